package stock

import (
	"cmp"
	"slices"

	"github.com/bahanajar/sitta-backend/pkg/enums"
	"github.com/bahanajar/sitta-backend/pkg/models"
)

// View holds the list filters. The zero value passes every item through in
// collection order.
type View struct {
	Region      string          `json:"region"`
	Category    string          `json:"category"`
	ReorderOnly bool            `json:"reorder_only"`
	SortBy      enums.StockSort `json:"sort_by"`
}

// CompareFunc orders two titles; it must behave like strings.Compare.
type CompareFunc func(a, b string) int

// AvailableCategories returns the canonical categories that occur among the
// items of region, in canonical order. No region selected yields no categories.
func AvailableCategories(items []models.StockItem, canonical []string, region string) []string {
	if region == "" {
		return []string{}
	}
	present := make(map[string]struct{})
	for _, item := range items {
		if item.Region == region {
			present[item.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(present))
	for _, category := range canonical {
		if _, ok := present[category]; ok {
			out = append(out, category)
		}
	}
	return out
}

// Filter applies the region, category and reorder filters, then the optional
// sort. The result never aliases items, so sorting leaves the collection order intact.
func Filter(items []models.StockItem, view View, compareTitles CompareFunc) []models.StockItem {
	out := make([]models.StockItem, 0, len(items))
	for _, item := range items {
		if view.Region != "" && item.Region != view.Region {
			continue
		}
		if view.Category != "" && item.Category != view.Category {
			continue
		}
		if view.ReorderOnly && !item.NeedsReorder() {
			continue
		}
		out = append(out, item)
	}

	switch view.SortBy {
	case enums.StockSortTitle:
		if compareTitles == nil {
			compareTitles = cmp.Compare[string]
		}
		slices.SortStableFunc(out, func(a, b models.StockItem) int {
			return compareTitles(a.Title, b.Title)
		})
	case enums.StockSortQuantity:
		slices.SortStableFunc(out, func(a, b models.StockItem) int {
			return cmp.Compare(a.Quantity, b.Quantity)
		})
	case enums.StockSortPrice:
		slices.SortStableFunc(out, func(a, b models.StockItem) int {
			return cmp.Compare(a.Price, b.Price)
		})
	}
	return out
}

// ReorderCount counts the items that need restocking.
func ReorderCount(items []models.StockItem) int {
	count := 0
	for _, item := range items {
		if item.NeedsReorder() {
			count++
		}
	}
	return count
}
