package stock

import (
	stocksvc "github.com/bahanajar/sitta-backend/internal/stock"
	"github.com/bahanajar/sitta-backend/pkg/format"
	"github.com/bahanajar/sitta-backend/pkg/models"
)

type itemResponse struct {
	models.StockItem
	PriceFormatted string `json:"price_formatted"`
	NeedsReorder   bool   `json:"needs_reorder"`
}

type editResponse struct {
	Index int          `json:"index"`
	Item  itemResponse `json:"item"`
}

type listResponse struct {
	View                stocksvc.View        `json:"view"`
	AvailableCategories []string             `json:"available_categories"`
	Items               []itemResponse       `json:"items"`
	ReorderCount        int                  `json:"reorder_count"`
	Editing             *editResponse        `json:"editing,omitempty"`
	FieldErrors         stocksvc.FieldErrors `json:"field_errors,omitempty"`
}

func newItemResponse(item models.StockItem, display format.Display) itemResponse {
	return itemResponse{
		StockItem:      item,
		PriceFormatted: "Rp " + display.Price(item.Price),
		NeedsReorder:   item.NeedsReorder(),
	}
}

func newEditResponse(edit stocksvc.Edit, display format.Display) *editResponse {
	return &editResponse{
		Index: edit.Index,
		Item:  newItemResponse(edit.Item, display),
	}
}

func newListResponse(m *stocksvc.Manager, display format.Display) listResponse {
	filtered := m.Filtered()
	items := make([]itemResponse, 0, len(filtered))
	for _, item := range filtered {
		items = append(items, newItemResponse(item, display))
	}

	categories := m.AvailableCategories()
	if categories == nil {
		categories = []string{}
	}

	resp := listResponse{
		View:                m.View(),
		AvailableCategories: categories,
		Items:               items,
		ReorderCount:        m.ReorderCount(),
		FieldErrors:         m.FieldErrors(),
	}
	if edit, ok := m.Editing(); ok {
		resp.Editing = newEditResponse(edit, display)
	}
	return resp
}
