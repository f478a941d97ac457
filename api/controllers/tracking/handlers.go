package tracking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bahanajar/sitta-backend/api/responses"
	"github.com/bahanajar/sitta-backend/api/validators"
	"github.com/bahanajar/sitta-backend/internal/session"
	trackingsvc "github.com/bahanajar/sitta-backend/internal/tracking"
	pkgerrors "github.com/bahanajar/sitta-backend/pkg/errors"
	"github.com/bahanajar/sitta-backend/pkg/format"
	"github.com/bahanajar/sitta-backend/pkg/logger"
	"github.com/bahanajar/sitta-backend/pkg/metrics"
)

type createResponse struct {
	Order   orderResponse    `json:"order"`
	Package *packageResponse `json:"package"`
}

func errSessionUnavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "session unavailable")
}

// List returns every delivery order, newest number first.
func List(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp []orderResponse
		if err := sess.Tracking(func(m *trackingsvc.Manager) error {
			resp = newOrderList(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

func Get(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		number := chi.URLParam(r, "number")
		var resp orderResponse
		err := sess.Tracking(func(m *trackingsvc.Manager) error {
			record, err := m.Get(number)
			if err != nil {
				return err
			}
			resp = newOrderResponse(m, record, display)
			return nil
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// NextNumber previews the number the next created order would receive.
func NextNumber(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp nextNumberResponse
		if err := sess.Tracking(func(m *trackingsvc.Manager) error {
			resp.Number = m.NextOrderNumber()
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// Form returns the pending new-order form with its resolved package.
func Form(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp formResponse
		if err := sess.Tracking(func(m *trackingsvc.Manager) error {
			resp = newFormResponse(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// UpdateForm fills in the pending form without submitting it.
func UpdateForm(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var payload formRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var resp formResponse
		if err := sess.Tracking(func(m *trackingsvc.Manager) error {
			applyForm(r.Context(), m, payload)
			resp = newFormResponse(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// CancelForm discards the pending form. The ship date returns to today.
func CancelForm(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp formResponse
		if err := sess.Tracking(func(m *trackingsvc.Manager) error {
			m.CancelAdd()
			resp = newFormResponse(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// Create applies the body to the pending form and submits it. The form keeps
// the submitted values when creation is rejected.
func Create(sess *session.Session, display format.Display, ops *metrics.OperationMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var payload formRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var (
			resp    createResponse
			message string
		)
		err := sess.Tracking(func(m *trackingsvc.Manager) error {
			applyForm(r.Context(), m, payload)
			receipt, err := m.Create(r.Context())
			if err != nil {
				return err
			}
			resp = createResponse{
				Order:   newOrderResponse(m, receipt.Record, display),
				Package: newPackageResponse(receipt.Package, display),
			}
			message = receipt.Message
			ops.SetOrderCount(m.Count())
			return nil
		})
		ops.ObserveTracking("create", err)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteAcknowledged(w, http.StatusCreated, resp, message)
	}
}
