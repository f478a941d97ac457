package models

import "github.com/bahanajar/sitta-backend/pkg/enums"

// DeliveryOrder authorizes dispatch of a package to a student. Orders are keyed
// by their number in the tracking collection; the number is not stored here.
type DeliveryOrder struct {
	StudentID   string                    `yaml:"student_id" json:"student_id"`
	StudentName string                    `yaml:"student_name" json:"student_name"`
	Status      enums.DeliveryOrderStatus `yaml:"status" json:"status"`
	CarrierCode string                    `yaml:"carrier_code" json:"carrier_code"`
	ShipDate    string                    `yaml:"ship_date" json:"ship_date"`
	PackageCode string                    `yaml:"package_code" json:"package_code"`
	Total       int64                     `yaml:"total" json:"total"`
	Events      []TrackingEvent           `yaml:"events" json:"events"`
}

// TrackingEvent is one entry of an order's append-only journey log.
type TrackingEvent struct {
	Timestamp   string `yaml:"timestamp" json:"timestamp"`
	Description string `yaml:"description" json:"description"`
}

// Clone returns a copy whose event log does not alias the receiver's.
func (o DeliveryOrder) Clone() DeliveryOrder {
	out := o
	out.Events = append([]TrackingEvent(nil), o.Events...)
	return out
}
