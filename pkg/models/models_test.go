package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockItemNeedsReorder(t *testing.T) {
	assert.True(t, StockItem{Quantity: 3, SafetyThreshold: 5}.NeedsReorder())
	assert.True(t, StockItem{Quantity: 0, SafetyThreshold: 0}.NeedsReorder())
	assert.False(t, StockItem{Quantity: 5, SafetyThreshold: 5}.NeedsReorder())
	assert.False(t, StockItem{Quantity: 10, SafetyThreshold: 2}.NeedsReorder())
}

func TestDeliveryOrderCloneDetachesEvents(t *testing.T) {
	order := DeliveryOrder{Events: []TrackingEvent{{Timestamp: "2026-01-01 08:00:00", Description: "created"}}}
	clone := order.Clone()
	clone.Events[0].Description = "changed"
	clone.Events = append(clone.Events, TrackingEvent{Description: "extra"})

	assert.Equal(t, "created", order.Events[0].Description)
	assert.Len(t, order.Events, 1)
}

func TestReferenceLookups(t *testing.T) {
	ref := Reference{
		Carriers: []Carrier{{Code: "REG", Name: "Reguler"}},
		Packages: []Package{{Code: "PAKET-UT-001", Name: "PAKET IPS Dasar", Price: 120000}},
	}

	carrier, ok := ref.FindCarrier("REG")
	assert.True(t, ok)
	assert.Equal(t, "Reguler", carrier.Name)
	_, ok = ref.FindCarrier("EXP")
	assert.False(t, ok)

	pkg, ok := ref.FindPackage("PAKET-UT-001")
	assert.True(t, ok)
	assert.Equal(t, int64(120000), pkg.Price)
	_, ok = ref.FindPackage("")
	assert.False(t, ok)
}
