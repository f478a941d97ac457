package controllers

import (
	"net/http"

	"github.com/bahanajar/sitta-backend/api/responses"
	"github.com/bahanajar/sitta-backend/internal/session"
	"github.com/bahanajar/sitta-backend/pkg/config"
	pkgerrors "github.com/bahanajar/sitta-backend/pkg/errors"
	"github.com/bahanajar/sitta-backend/pkg/logger"
)

const envHeader = "X-Sitta-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the reference data has been loaded into a
// session.
func HealthReady(cfg *config.Config, sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session not loaded"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
