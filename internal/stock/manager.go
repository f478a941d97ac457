// Package stock owns the teaching-material stock list: its filters, the add
// form with validation and the edit buffer.
package stock

import (
	"context"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	pkgerrors "github.com/bahanajar/sitta-backend/pkg/errors"
	"github.com/bahanajar/sitta-backend/pkg/enums"
	"github.com/bahanajar/sitta-backend/pkg/logger"
	"github.com/bahanajar/sitta-backend/pkg/models"
)

// Options configures a Manager.
type Options struct {
	// Categories is the canonical category list; it fixes the order of
	// AvailableCategories.
	Categories []string
	// Collation selects the language used to order titles.
	Collation language.Tag
	Logger    *logger.Logger
}

// Edit is the editable copy of the item at Index.
type Edit struct {
	Index int              `json:"index"`
	Item  models.StockItem `json:"item"`
}

// Manager is the single owner of the stock collection. It is not safe for
// concurrent use; callers serialize access.
type Manager struct {
	items      []models.StockItem
	categories []string
	collator   *collate.Collator
	logg       *logger.Logger

	view    View
	pending models.StockItem
	errors  FieldErrors
	editing *Edit
}

// NewManager copies the seed items into a new manager.
func NewManager(seed []models.StockItem, opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Collation == language.Und {
		opts.Collation = language.Indonesian
	}
	return &Manager{
		items:      append([]models.StockItem(nil), seed...),
		categories: append([]string(nil), opts.Categories...),
		collator:   collate.New(opts.Collation),
		logg:       opts.Logger,
		errors:     FieldErrors{},
	}
}

// Items returns a copy of the collection in insertion order.
func (m *Manager) Items() []models.StockItem {
	return append([]models.StockItem(nil), m.items...)
}

func (m *Manager) View() View {
	return m.view
}

// AvailableCategories lists the categories selectable for the current region.
func (m *Manager) AvailableCategories() []string {
	return AvailableCategories(m.items, m.categories, m.view.Region)
}

// Filtered returns the list as the current view shows it.
func (m *Manager) Filtered() []models.StockItem {
	return Filter(m.items, m.view, m.collator.CompareString)
}

// ReorderCount counts items below their safety threshold across the whole collection.
func (m *Manager) ReorderCount() int {
	return ReorderCount(m.items)
}

// SelectRegion sets the region filter and clears the category filter in the
// same transition, since a category is only meaningful within a region.
func (m *Manager) SelectRegion(ctx context.Context, region string) {
	previous := m.view.Region
	m.view.Region = region
	m.view.Category = ""

	if previous == region {
		return
	}
	ctx = m.logg.WithFields(ctx, map[string]any{"from": previous, "to": region})
	if region != "" {
		ctx = m.logg.WithField(ctx, "available_categories", strings.Join(m.AvailableCategories(), ", "))
	}
	m.logg.Debug(ctx, "stock.filter.region_changed")
}

func (m *Manager) SelectCategory(ctx context.Context, category string) {
	m.view.Category = category
	m.logg.Debug(m.logg.WithField(ctx, "category", category), "stock.filter.category_changed")
}

// SetReorderOnly toggles the needs-reorder filter.
func (m *Manager) SetReorderOnly(ctx context.Context, on bool) {
	m.view.ReorderOnly = on
	ctx = m.logg.WithField(ctx, "enabled", on)
	if on {
		ctx = m.logg.WithField(ctx, "reorder_count", m.ReorderCount())
	}
	m.logg.Debug(ctx, "stock.filter.reorder_toggled")
}

func (m *Manager) SetSort(ctx context.Context, sortBy enums.StockSort) error {
	if !sortBy.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid sort field").
			WithDetails(map[string]string{"sort_by": "must be one of title, quantity, price"})
	}
	m.view.SortBy = sortBy
	m.logg.Debug(m.logg.WithField(ctx, "sort_by", sortBy.String()), "stock.view.sort_changed")
	return nil
}

// ResetFilters clears every filter and the sort.
func (m *Manager) ResetFilters(ctx context.Context) {
	m.view = View{}
	m.logg.Debug(ctx, "stock.filter.reset")
}

// SetPending replaces the add-form buffer.
func (m *Manager) SetPending(item models.StockItem) {
	m.pending = item
}

func (m *Manager) Pending() models.StockItem {
	return m.pending
}

// FieldErrors returns the violations recorded by the last failed Add.
func (m *Manager) FieldErrors() FieldErrors {
	out := make(FieldErrors, len(m.errors))
	for field, msg := range m.errors {
		out[field] = msg
	}
	return out
}

// Validate reports every rule the candidate breaks against the current
// collection. An empty result means the candidate may be added.
func (m *Manager) Validate(candidate models.StockItem) FieldErrors {
	return toFieldErrors(validateCandidate(candidate, m.items))
}

// Add validates the pending item and appends a copy of it. On failure the
// collection is untouched and the field errors are kept for display.
func (m *Manager) Add(ctx context.Context) (models.StockItem, error) {
	candidate := m.pending
	if err := validateCandidate(candidate, m.items); err != nil {
		m.errors = toFieldErrors(err)
		return models.StockItem{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "stock item is invalid").
			WithDetails(m.FieldErrors())
	}

	m.items = append(m.items, candidate)
	m.logg.Info(m.logg.WithStockCode(ctx, candidate.Code), "stock.item.added")
	m.CancelAdd()
	return candidate, nil
}

// AddItem fills the add form with item and submits it.
func (m *Manager) AddItem(ctx context.Context, item models.StockItem) (models.StockItem, error) {
	m.SetPending(item)
	return m.Add(ctx)
}

// CancelAdd resets the add form and its errors.
func (m *Manager) CancelAdd() {
	m.pending = models.StockItem{}
	m.errors = FieldErrors{}
}

// IndexOf returns the collection position of code, or -1.
func (m *Manager) IndexOf(code string) int {
	for i, item := range m.items {
		if item.Code == code {
			return i
		}
	}
	return -1
}

// StartEdit snapshots the item at index into the edit buffer.
func (m *Manager) StartEdit(ctx context.Context, index int) (models.StockItem, error) {
	if index < 0 || index >= len(m.items) {
		return models.StockItem{}, pkgerrors.New(pkgerrors.CodeNotFound, "stock item not found").
			WithDetails(map[string]any{"index": index})
	}
	m.editing = &Edit{Index: index, Item: m.items[index]}
	m.logg.Debug(m.logg.WithStockCode(ctx, m.items[index].Code), "stock.edit.started")
	return m.editing.Item, nil
}

// Editing returns the edit buffer, if an edit is in progress.
func (m *Manager) Editing() (Edit, bool) {
	if m.editing == nil {
		return Edit{}, false
	}
	return *m.editing, true
}

// UpdateEdit replaces the editable copy without touching the collection.
func (m *Manager) UpdateEdit(item models.StockItem) error {
	if m.editing == nil {
		return errNoActiveEdit()
	}
	m.editing.Item = item
	return nil
}

// SaveEdit writes the editable copy back to its original position. Edits are
// not re-validated.
func (m *Manager) SaveEdit(ctx context.Context) (models.StockItem, error) {
	if m.editing == nil {
		return models.StockItem{}, errNoActiveEdit()
	}
	saved := m.editing.Item
	m.items[m.editing.Index] = saved
	m.logg.Info(m.logg.WithStockCode(ctx, saved.Code), "stock.item.updated")
	m.CancelEdit()
	return saved, nil
}

// CancelEdit drops the edit buffer.
func (m *Manager) CancelEdit() {
	m.editing = nil
}

func errNoActiveEdit() error {
	return pkgerrors.New(pkgerrors.CodePrecondition, "no stock item is being edited")
}
