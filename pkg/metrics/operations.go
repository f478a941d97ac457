package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation outcomes recorded on the counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// OperationMetrics counts stock and tracking mutations by outcome.
type OperationMetrics struct {
	stock    *prometheus.CounterVec
	tracking *prometheus.CounterVec
	orders   prometheus.Gauge
}

// NewOperationMetrics registers the operation metrics on the provided registerer.
func NewOperationMetrics(reg prometheus.Registerer) *OperationMetrics {
	if reg == nil {
		return &OperationMetrics{}
	}
	stock := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_operations_total",
		Help: "Stock add and edit operations by outcome.",
	}, []string{"operation", "outcome"})
	tracking := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_order_operations_total",
		Help: "Delivery order operations by outcome.",
	}, []string{"operation", "outcome"})
	orders := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delivery_orders",
		Help: "Delivery orders currently held in memory.",
	})
	reg.MustRegister(stock, tracking, orders)
	return &OperationMetrics{
		stock:    stock,
		tracking: tracking,
		orders:   orders,
	}
}

// ObserveStock records a stock operation outcome.
func (m *OperationMetrics) ObserveStock(operation string, err error) {
	if m == nil || m.stock == nil {
		return
	}
	m.stock.WithLabelValues(normalizeLabel(operation), outcome(err)).Inc()
}

// ObserveTracking records a delivery-order operation outcome.
func (m *OperationMetrics) ObserveTracking(operation string, err error) {
	if m == nil || m.tracking == nil {
		return
	}
	m.tracking.WithLabelValues(normalizeLabel(operation), outcome(err)).Inc()
}

// SetOrderCount publishes the size of the tracking collection.
func (m *OperationMetrics) SetOrderCount(n int) {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.Set(float64(n))
}

func outcome(err error) string {
	if err != nil {
		return OutcomeRejected
	}
	return OutcomeSuccess
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
