package stock

import (
	"github.com/bahanajar/sitta-backend/api/validators"
	"github.com/bahanajar/sitta-backend/pkg/models"
)

type updateViewRequest struct {
	Region      *string `json:"region"`
	Category    *string `json:"category"`
	ReorderOnly *bool   `json:"reorder_only"`
	// SortBy is checked by the stock manager; "" clears the sort.
	SortBy      *string `json:"sort_by"`
}

// stockItemRequest is the add and edit form. Length rules on code and title
// are enforced by the stock manager so that they surface as field errors.
type stockItemRequest struct {
	Code            string `json:"code" validate:"max=32"`
	Title           string `json:"title" validate:"max=200"`
	Category        string `json:"category" validate:"max=100"`
	Region          string `json:"region" validate:"max=100"`
	ShelfLocation   string `json:"shelf_location" validate:"max=50"`
	Price           int64  `json:"price" validate:"min=0"`
	Quantity        int    `json:"quantity" validate:"min=0"`
	SafetyThreshold int    `json:"safety_threshold" validate:"min=0"`
	NotesHTML       string `json:"notes_html"`
}

func toStockItem(payload stockItemRequest) models.StockItem {
	return models.StockItem{
		Code:            validators.SanitizeString(payload.Code, 0),
		Title:           validators.SanitizeString(payload.Title, 0),
		Category:        validators.SanitizeString(payload.Category, 0),
		Region:          validators.SanitizeString(payload.Region, 0),
		ShelfLocation:   validators.SanitizeString(payload.ShelfLocation, 0),
		Price:           payload.Price,
		Quantity:        payload.Quantity,
		SafetyThreshold: payload.SafetyThreshold,
		NotesHTML:       payload.NotesHTML,
	}
}
