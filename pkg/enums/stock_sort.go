package enums

import "fmt"

// StockSort selects the ordering of the stock list view. The zero value keeps
// the collection order.
type StockSort string

const (
	StockSortNone     StockSort = ""
	StockSortTitle    StockSort = "title"
	StockSortQuantity StockSort = "quantity"
	StockSortPrice    StockSort = "price"
)

var validStockSorts = []StockSort{
	StockSortNone,
	StockSortTitle,
	StockSortQuantity,
	StockSortPrice,
}

// String implements fmt.Stringer.
func (s StockSort) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StockSort.
func (s StockSort) IsValid() bool {
	for _, candidate := range validStockSorts {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockSort converts raw input into a StockSort.
func ParseStockSort(value string) (StockSort, error) {
	for _, candidate := range validStockSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock sort %q", value)
}
