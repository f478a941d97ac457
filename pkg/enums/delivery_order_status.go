package enums

import "fmt"

// DeliveryOrderStatus tracks shipping progress for a delivery order.
type DeliveryOrderStatus string

const (
	DeliveryOrderStatusProcessing DeliveryOrderStatus = "processing"
	DeliveryOrderStatusInTransit  DeliveryOrderStatus = "in_transit"
	DeliveryOrderStatusDelivered  DeliveryOrderStatus = "delivered"
)

var validDeliveryOrderStatuses = []DeliveryOrderStatus{
	DeliveryOrderStatusProcessing,
	DeliveryOrderStatusInTransit,
	DeliveryOrderStatusDelivered,
}

var deliveryOrderStatusLabels = map[DeliveryOrderStatus]string{
	DeliveryOrderStatusProcessing: "Processing",
	DeliveryOrderStatusInTransit:  "In Transit",
	DeliveryOrderStatusDelivered:  "Delivered",
}

// String implements fmt.Stringer.
func (s DeliveryOrderStatus) String() string {
	return string(s)
}

// Label returns the display text shown next to an order.
func (s DeliveryOrderStatus) Label() string {
	if label, ok := deliveryOrderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsValid reports whether the value is a known DeliveryOrderStatus.
func (s DeliveryOrderStatus) IsValid() bool {
	for _, candidate := range validDeliveryOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseDeliveryOrderStatus converts raw input into a DeliveryOrderStatus.
func ParseDeliveryOrderStatus(value string) (DeliveryOrderStatus, error) {
	for _, candidate := range validDeliveryOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery order status %q", value)
}
