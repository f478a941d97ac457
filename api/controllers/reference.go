package controllers

import (
	"net/http"

	"github.com/bahanajar/sitta-backend/api/responses"
	"github.com/bahanajar/sitta-backend/internal/session"
	"github.com/bahanajar/sitta-backend/internal/tracking"
	pkgerrors "github.com/bahanajar/sitta-backend/pkg/errors"
	"github.com/bahanajar/sitta-backend/pkg/logger"
	"github.com/bahanajar/sitta-backend/pkg/models"
)

// Reference exposes the regions, categories, carriers and packages the
// service was loaded with.
func Reference(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session unavailable"))
			return
		}

		var ref models.Reference
		if err := sess.Tracking(func(m *tracking.Manager) error {
			ref = m.Reference()
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ref)
	}
}
