package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bahanajar/sitta-backend/api/responses"
	pkgerrors "github.com/bahanajar/sitta-backend/pkg/errors"
	"github.com/bahanajar/sitta-backend/pkg/logger"
)

// Recoverer turns a handler panic into an INTERNAL_ERROR envelope. Aborted
// handlers keep their panic so net/http can drop the connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic":  fmt.Sprint(rec),
						"method": r.Method,
						"path":   r.URL.Path,
					})
				}
				err := fmt.Errorf("panic: %v", rec)
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
