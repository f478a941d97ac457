package models

// StockItem is one teaching-material record held by a regional office.
type StockItem struct {
	Code            string `yaml:"code" json:"code"`
	Title           string `yaml:"title" json:"title"`
	Category        string `yaml:"category" json:"category"`
	Region          string `yaml:"region" json:"region"`
	ShelfLocation   string `yaml:"shelf_location" json:"shelf_location"`
	Price           int64  `yaml:"price" json:"price"`
	Quantity        int    `yaml:"quantity" json:"quantity"`
	SafetyThreshold int    `yaml:"safety_threshold" json:"safety_threshold"`
	NotesHTML       string `yaml:"notes_html" json:"notes_html"`
}

// NeedsReorder reports whether the item is below its safety threshold or out of stock.
func (s StockItem) NeedsReorder() bool {
	return s.Quantity < s.SafetyThreshold || s.Quantity == 0
}
