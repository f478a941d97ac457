package stock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bahanajar/sitta-backend/internal/session"
	stocksvc "github.com/bahanajar/sitta-backend/internal/stock"
	"github.com/bahanajar/sitta-backend/pkg/fixtures"
	"github.com/bahanajar/sitta-backend/pkg/format"
	"github.com/bahanajar/sitta-backend/pkg/metrics"
	"github.com/bahanajar/sitta-backend/pkg/types"
)

var testDisplay = format.Display{Separator: ".", Locale: "id-ID"}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	ds, err := fixtures.Default()
	require.NoError(t, err)
	return session.New(session.Params{Dataset: ds, Collation: language.Indonesian, Separator: "."})
}

func newTestRouter(sess *session.Session, ops *metrics.OperationMetrics) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/stock", List(sess, testDisplay, nil))
	r.Post("/api/v1/stock", Add(sess, testDisplay, ops, nil))
	r.Delete("/api/v1/stock/form", CancelAdd(sess, testDisplay, nil))
	r.Put("/api/v1/stock/view", UpdateView(sess, testDisplay, nil))
	r.Delete("/api/v1/stock/view", ResetView(sess, testDisplay, nil))
	r.Post("/api/v1/stock/{code}/edit", StartEdit(sess, testDisplay, nil))
	r.Put("/api/v1/stock/edit", SaveEdit(sess, testDisplay, ops, nil))
	r.Delete("/api/v1/stock/edit", CancelEdit(sess, testDisplay, nil))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func decodeList(t *testing.T, resp *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var envelope struct {
		Data listResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func assertStockCounter(t *testing.T, reg *prometheus.Registry, operation, outcome string) {
	t.Helper()
	expected := fmt.Sprintf(`
# HELP stock_operations_total Stock add and edit operations by outcome.
# TYPE stock_operations_total counter
stock_operations_total{operation=%q,outcome=%q} 1
`, operation, outcome)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "stock_operations_total"))
}

func itemCodes(items []itemResponse) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Code)
	}
	return out
}

func TestListReturnsCollectionWithDerivedFields(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodGet, "/api/v1/stock", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	list := decodeList(t, resp)
	assert.Equal(t, []string{"EKMA4116", "EKMA4115", "BIOL4201", "FISIP4001", "PDGK4101"}, itemCodes(list.Items))
	assert.Equal(t, 3, list.ReorderCount)
	assert.Empty(t, list.AvailableCategories)
	assert.Equal(t, "Rp 65.000", list.Items[0].PriceFormatted)
	assert.False(t, list.Items[0].NeedsReorder)
	assert.True(t, list.Items[1].NeedsReorder)
	assert.Nil(t, list.Editing)
}

func TestUpdateViewAppliesRegionThenCategory(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodPut, "/api/v1/stock/view", `{"region":"Surabaya","category":"Praktikum"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeList(t, resp)
	assert.Equal(t, "Surabaya", list.View.Region)
	assert.Equal(t, "Praktikum", list.View.Category)
	assert.Equal(t, []string{"Praktikum", "Problem-Based"}, list.AvailableCategories)
	assert.Equal(t, []string{"BIOL4201"}, itemCodes(list.Items))

	resp = do(t, h, http.MethodPut, "/api/v1/stock/view", `{"region":"Jakarta"}`)
	list = decodeList(t, resp)
	assert.Equal(t, "", list.View.Category)
	assert.Equal(t, []string{"EKMA4116", "EKMA4115"}, itemCodes(list.Items))
}

func TestUpdateViewSortAndReorder(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodPut, "/api/v1/stock/view", `{"reorder_only":true,"sort_by":"quantity"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeList(t, resp)
	assert.Equal(t, []string{"PDGK4101", "FISIP4001", "EKMA4115"}, itemCodes(list.Items))
	assert.Equal(t, 3, list.ReorderCount)

	resp = do(t, h, http.MethodDelete, "/api/v1/stock/view", "")
	list = decodeList(t, resp)
	assert.Equal(t, stocksvc.View{}, list.View)
	assert.Len(t, list.Items, 5)
}

func TestUpdateViewClearsSortOnly(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodPut, "/api/v1/stock/view", `{"region":"Jakarta","reorder_only":true,"sort_by":"price"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(t, h, http.MethodPut, "/api/v1/stock/view", `{"sort_by":""}`)
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeList(t, resp)
	assert.Equal(t, stocksvc.View{Region: "Jakarta", ReorderOnly: true}, list.View)
	assert.Equal(t, []string{"EKMA4115"}, itemCodes(list.Items))
}

func TestUpdateViewRejectsUnknownSort(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodPut, "/api/v1/stock/view", `{"region":"Jakarta","sort_by":"author"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	list := decodeList(t, do(t, h, http.MethodGet, "/api/v1/stock", ""))
	assert.Equal(t, "", list.View.Region)
}

func TestAddAppendsValidItem(t *testing.T) {
	reg := prometheus.NewRegistry()
	ops := metrics.NewOperationMetrics(reg)
	h := newTestRouter(newTestSession(t), ops)

	body := `{"code":" MATA4110 ","title":"Aljabar Linear","category":"MK Wajib","region":"Surabaya","price":60000,"quantity":7,"safety_threshold":3,"notes_html":"<b>baru</b>"}`
	resp := do(t, h, http.MethodPost, "/api/v1/stock", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var envelope struct {
		Data    itemResponse `json:"data"`
		Message string       `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "MATA4110", envelope.Data.Code)
	assert.Equal(t, "<b>baru</b>", envelope.Data.NotesHTML)
	assert.Equal(t, "Rp 60.000", envelope.Data.PriceFormatted)
	assert.Equal(t, msgItemAdded, envelope.Message)

	list := decodeList(t, do(t, h, http.MethodGet, "/api/v1/stock", ""))
	assert.Len(t, list.Items, 6)
	assert.Equal(t, "MATA4110", list.Items[5].Code)
	assertStockCounter(t, reg, "add", metrics.OutcomeSuccess)
}

func TestAddRejectsInvalidItem(t *testing.T) {
	reg := prometheus.NewRegistry()
	ops := metrics.NewOperationMetrics(reg)
	h := newTestRouter(newTestSession(t), ops)

	resp := do(t, h, http.MethodPost, "/api/v1/stock", `{"code":"EKMA4116","title":"Abc"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "code already exists", envelope.Error.Details["code"])
	assert.Equal(t, "title must be at least 5 characters", envelope.Error.Details["title"])

	list := decodeList(t, do(t, h, http.MethodGet, "/api/v1/stock", ""))
	assert.Len(t, list.Items, 5)
	assert.Len(t, list.FieldErrors, 2)
	assertStockCounter(t, reg, "add", metrics.OutcomeRejected)

	list = decodeList(t, do(t, h, http.MethodDelete, "/api/v1/stock/form", ""))
	assert.Empty(t, list.FieldErrors)
}

func TestAddRejectsMalformedBody(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodPost, "/api/v1/stock", `{"code":"ABCD","title":"Valid title","author":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = do(t, h, http.MethodPost, "/api/v1/stock", `{"code":"ABCD","title":"Valid title","quantity":-1}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestEditFlow(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodPost, "/api/v1/stock/BIOL4201/edit", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var started struct {
		Data editResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&started))
	assert.Equal(t, 2, started.Data.Index)
	assert.Equal(t, "BIOL4201", started.Data.Item.Code)

	list := decodeList(t, do(t, h, http.MethodGet, "/api/v1/stock", ""))
	require.NotNil(t, list.Editing)
	assert.Equal(t, 2, list.Editing.Index)

	// Edits are stored as given, even when they would fail the add rules.
	resp = do(t, h, http.MethodPut, "/api/v1/stock/edit", `{"code":"BIO","title":"Bio","quantity":4,"safety_threshold":10}`)
	require.Equal(t, http.StatusOK, resp.Code)
	var saved struct {
		Data    itemResponse `json:"data"`
		Message string       `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	assert.Equal(t, "BIO", saved.Data.Code)
	assert.True(t, saved.Data.NeedsReorder)
	assert.Equal(t, msgItemUpdated, saved.Message)

	list = decodeList(t, do(t, h, http.MethodGet, "/api/v1/stock", ""))
	assert.Equal(t, []string{"EKMA4116", "EKMA4115", "BIO", "FISIP4001", "PDGK4101"}, itemCodes(list.Items))
	assert.Nil(t, list.Editing)
}

func TestEditCancelAndMissing(t *testing.T) {
	h := newTestRouter(newTestSession(t), nil)

	resp := do(t, h, http.MethodPost, "/api/v1/stock/NOPE/edit", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = do(t, h, http.MethodPut, "/api/v1/stock/edit", `{"code":"ABCD","title":"Valid title"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	do(t, h, http.MethodPost, "/api/v1/stock/EKMA4116/edit", "")
	list := decodeList(t, do(t, h, http.MethodDelete, "/api/v1/stock/edit", ""))
	assert.Nil(t, list.Editing)
	assert.Equal(t, "EKMA4116", list.Items[0].Code)
}

func TestHandlersWithoutSession(t *testing.T) {
	resp := do(t, List(nil, testDisplay, nil), http.MethodGet, "/api/v1/stock", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}
