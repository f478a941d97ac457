// Package tracking owns the delivery-order collection, the new-order form and
// order-number generation.
package tracking

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bahanajar/sitta-backend/pkg/enums"
	pkgerrors "github.com/bahanajar/sitta-backend/pkg/errors"
	"github.com/bahanajar/sitta-backend/pkg/format"
	"github.com/bahanajar/sitta-backend/pkg/logger"
	"github.com/bahanajar/sitta-backend/pkg/models"
)

// Options configures a Manager.
type Options struct {
	Reference models.Reference
	// Now defaults to time.Now; tests pin it.
	Now       func() time.Time
	Separator string
	Logger    *logger.Logger
}

// Form is the pending new-order form.
type Form struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	CarrierCode string `json:"carrier_code"`
	PackageCode string `json:"package_code"`
	ShipDate    string `json:"ship_date"`
}

// Record is an order together with its number.
type Record struct {
	Number string `json:"number"`
	models.DeliveryOrder
}

// Receipt is returned by a successful Create.
type Receipt struct {
	Record  Record
	Package models.Package
	Message string
}

// Manager is the single owner of the delivery-order collection. It is not
// safe for concurrent use; callers serialize access.
type Manager struct {
	orders map[string]models.DeliveryOrder
	ref    models.Reference
	now    func() time.Time
	sep    string
	logg   *logger.Logger

	pending Form
}

// NewManager copies the seed orders into a new manager and defaults the ship
// date of the form to today.
func NewManager(seed map[string]models.DeliveryOrder, opts Options) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Separator == "" {
		opts.Separator = format.DefaultSeparator
	}
	orders := make(map[string]models.DeliveryOrder, len(seed))
	for number, order := range seed {
		orders[number] = order.Clone()
	}
	m := &Manager{
		orders: orders,
		ref:    opts.Reference,
		now:    opts.Now,
		sep:    opts.Separator,
		logg:   opts.Logger,
	}
	m.resetForm()
	return m
}

// Count returns the number of orders.
func (m *Manager) Count() int {
	return len(m.orders)
}

func (m *Manager) Reference() models.Reference {
	return m.ref
}

// NextOrderNumber previews the number the next Create would assign.
func (m *Manager) NextOrderNumber() string {
	keys := make([]string, 0, len(m.orders))
	for number := range m.orders {
		keys = append(keys, number)
	}
	return NextOrderNumber(m.now().Year(), keys)
}

func (m *Manager) SetPending(form Form) {
	m.pending = form
}

func (m *Manager) Pending() Form {
	return m.pending
}

// SelectPackage stores the package code on the form. Unknown codes are kept
// but resolve to no selection.
func (m *Manager) SelectPackage(ctx context.Context, code string) {
	m.pending.PackageCode = code
	pkg := m.SelectedPackage()
	if pkg == nil {
		return
	}
	ctx = m.logg.WithFields(ctx, map[string]any{
		"package_code":     pkg.Code,
		"package_name":     pkg.Name,
		"package_contents": strings.Join(pkg.Contents, ", "),
		"package_price":    "Rp " + format.Price(pkg.Price, m.sep),
	})
	m.logg.Debug(ctx, "tracking.form.package_selected")
}

// SelectCarrier stores the carrier code on the form.
func (m *Manager) SelectCarrier(ctx context.Context, code string) {
	m.pending.CarrierCode = code
	carrier, ok := m.ref.FindCarrier(code)
	if !ok {
		return
	}
	ctx = m.logg.WithFields(ctx, map[string]any{"carrier_code": carrier.Code, "carrier_name": carrier.Name})
	m.logg.Debug(ctx, "tracking.form.carrier_selected")
}

// SelectedPackage resolves the form's package code. It returns nil when no
// code is set or the code is unknown.
func (m *Manager) SelectedPackage() *models.Package {
	if m.pending.PackageCode == "" {
		return nil
	}
	pkg, ok := m.ref.FindPackage(m.pending.PackageCode)
	if !ok {
		return nil
	}
	return &pkg
}

// List returns every order, newest number first.
func (m *Manager) List() []Record {
	out := make([]Record, 0, len(m.orders))
	for number, order := range m.orders {
		out = append(out, Record{Number: number, DeliveryOrder: order.Clone()})
	}
	slices.SortFunc(out, func(a, b Record) int {
		return CompareOrderNumbers(b.Number, a.Number)
	})
	return out
}

func (m *Manager) Get(number string) (Record, error) {
	order, ok := m.orders[number]
	if !ok {
		return Record{}, pkgerrors.New(pkgerrors.CodeNotFound, "delivery order not found").
			WithDetails(map[string]any{"number": number})
	}
	return Record{Number: number, DeliveryOrder: order.Clone()}, nil
}

// Create turns the pending form into a new order. A package must be selected
// and every other field filled in; otherwise nothing changes.
func (m *Manager) Create(ctx context.Context) (Receipt, error) {
	pkg := m.SelectedPackage()
	if pkg == nil {
		return Receipt{}, pkgerrors.New(pkgerrors.CodePrecondition, "select a package first").
			WithDetails(map[string]string{"package_code": "is required"})
	}
	if missing := m.missingFields(); len(missing) > 0 {
		return Receipt{}, pkgerrors.New(pkgerrors.CodePrecondition, "complete all required fields").
			WithDetails(missing)
	}

	now := m.now()
	number := m.NextOrderNumber()
	order := models.DeliveryOrder{
		StudentID:   m.pending.StudentID,
		StudentName: m.pending.StudentName,
		Status:      enums.DeliveryOrderStatusProcessing,
		CarrierCode: m.pending.CarrierCode,
		ShipDate:    m.pending.ShipDate,
		PackageCode: pkg.Code,
		Total:       pkg.Price,
	}
	order.Events = appendEvent(order.Events, models.TrackingEvent{
		Timestamp:   format.Timestamp(now),
		Description: fmt.Sprintf("order %s created and processing", number),
	})
	m.orders[number] = order

	ctx = m.logg.WithOrderNumber(ctx, number)
	m.logg.Info(ctx, "tracking.order.created")

	receipt := Receipt{
		Record:  Record{Number: number, DeliveryOrder: order.Clone()},
		Package: *pkg,
		Message: fmt.Sprintf("Delivery Order %s created\n\nName: %s\nPackage: %s\nTotal: Rp %s",
			number, order.StudentName, pkg.Name, format.Price(pkg.Price, m.sep)),
	}
	m.resetForm()
	return receipt, nil
}

// CancelAdd clears the form, re-defaulting the ship date to today.
func (m *Manager) CancelAdd() {
	m.resetForm()
}

// CarrierName returns the display name of a carrier, or the code itself.
func (m *Manager) CarrierName(code string) string {
	if carrier, ok := m.ref.FindCarrier(code); ok {
		return carrier.Name
	}
	return code
}

// PackageLabel returns "<code> - <name>" for a package, or the code itself.
func (m *Manager) PackageLabel(code string) string {
	if pkg, ok := m.ref.FindPackage(code); ok {
		return pkg.Code + " - " + pkg.Name
	}
	return code
}

func (m *Manager) missingFields() map[string]string {
	missing := map[string]string{}
	fields := []struct {
		name  string
		value string
	}{
		{"student_id", m.pending.StudentID},
		{"student_name", m.pending.StudentName},
		{"carrier_code", m.pending.CarrierCode},
		{"ship_date", m.pending.ShipDate},
	}
	for _, f := range fields {
		if f.value == "" {
			missing[f.name] = "is required"
		}
	}
	return missing
}

func (m *Manager) resetForm() {
	m.pending = Form{ShipDate: format.ISODate(m.now())}
}

// appendEvent is the only way events enter an order's log.
func appendEvent(events []models.TrackingEvent, event models.TrackingEvent) []models.TrackingEvent {
	return append(events, event)
}
