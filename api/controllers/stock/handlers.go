package stock

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bahanajar/sitta-backend/api/responses"
	"github.com/bahanajar/sitta-backend/api/validators"
	"github.com/bahanajar/sitta-backend/internal/session"
	stocksvc "github.com/bahanajar/sitta-backend/internal/stock"
	"github.com/bahanajar/sitta-backend/pkg/enums"
	pkgerrors "github.com/bahanajar/sitta-backend/pkg/errors"
	"github.com/bahanajar/sitta-backend/pkg/format"
	"github.com/bahanajar/sitta-backend/pkg/logger"
	"github.com/bahanajar/sitta-backend/pkg/metrics"
)

const (
	msgItemAdded   = "stock item added"
	msgItemUpdated = "stock item updated"
)

func errSessionUnavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "session unavailable")
}

// List renders the stock list as the current view shows it.
func List(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp listResponse
		if err := sess.Stock(func(m *stocksvc.Manager) error {
			resp = newListResponse(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// UpdateView applies the filter and sort changes present in the body. The sort
// is applied first so that a rejected sort leaves the view untouched; a region
// change always clears the category before a category in the same body is
// applied.
func UpdateView(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var payload updateViewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		var resp listResponse
		err := sess.Stock(func(m *stocksvc.Manager) error {
			if payload.SortBy != nil {
				if err := m.SetSort(ctx, enums.StockSort(*payload.SortBy)); err != nil {
					return err
				}
			}
			if payload.Region != nil {
				m.SelectRegion(ctx, validators.SanitizeString(*payload.Region, 0))
			}
			if payload.Category != nil {
				m.SelectCategory(ctx, validators.SanitizeString(*payload.Category, 0))
			}
			if payload.ReorderOnly != nil {
				m.SetReorderOnly(ctx, *payload.ReorderOnly)
			}
			resp = newListResponse(m, display)
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

func ResetView(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp listResponse
		if err := sess.Stock(func(m *stocksvc.Manager) error {
			m.ResetFilters(r.Context())
			resp = newListResponse(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// Add validates the submitted item and appends it to the collection. On
// rejection the field errors are also kept for the list view.
func Add(sess *session.Session, display format.Display, ops *metrics.OperationMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var payload stockItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var resp itemResponse
		err := sess.Stock(func(m *stocksvc.Manager) error {
			added, err := m.AddItem(r.Context(), toStockItem(payload))
			if err != nil {
				return err
			}
			resp = newItemResponse(added, display)
			return nil
		})
		ops.ObserveStock("add", err)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteAcknowledged(w, http.StatusCreated, resp, msgItemAdded)
	}
}

// CancelAdd clears the add form and any field errors it left behind.
func CancelAdd(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp listResponse
		if err := sess.Stock(func(m *stocksvc.Manager) error {
			m.CancelAdd()
			resp = newListResponse(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// StartEdit opens the item identified by the code URL parameter for editing.
func StartEdit(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		code := chi.URLParam(r, "code")
		var resp *editResponse
		err := sess.Stock(func(m *stocksvc.Manager) error {
			index := m.IndexOf(code)
			if index < 0 {
				return pkgerrors.New(pkgerrors.CodeNotFound, "stock item not found").
					WithDetails(map[string]any{"code": code})
			}
			if _, err := m.StartEdit(r.Context(), index); err != nil {
				return err
			}
			edit, _ := m.Editing()
			resp = newEditResponse(edit, display)
			return nil
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// SaveEdit replaces the editable copy with the body and writes it back to its
// original position.
func SaveEdit(sess *session.Session, display format.Display, ops *metrics.OperationMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var payload stockItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var resp itemResponse
		err := sess.Stock(func(m *stocksvc.Manager) error {
			if err := m.UpdateEdit(toStockItem(payload)); err != nil {
				return err
			}
			saved, err := m.SaveEdit(r.Context())
			if err != nil {
				return err
			}
			resp = newItemResponse(saved, display)
			return nil
		})
		ops.ObserveStock("edit", err)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteAcknowledged(w, http.StatusOK, resp, msgItemUpdated)
	}
}

func CancelEdit(sess *session.Session, display format.Display, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, errSessionUnavailable())
			return
		}

		var resp listResponse
		if err := sess.Stock(func(m *stocksvc.Manager) error {
			m.CancelEdit()
			resp = newListResponse(m, display)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
