package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServer(t *testing.T) {
	h := http.NotFoundHandler()
	srv := NewServer(":8080", h)

	assert.Equal(t, ":8080", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.NotZero(t, srv.ReadHeaderTimeout)
}
