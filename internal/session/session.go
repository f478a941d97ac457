// Package session owns the process-wide stock and tracking managers and
// serializes access to each of them.
package session

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/bahanajar/sitta-backend/internal/stock"
	"github.com/bahanajar/sitta-backend/internal/tracking"
	"github.com/bahanajar/sitta-backend/pkg/fixtures"
	"github.com/bahanajar/sitta-backend/pkg/logger"
)

// Params wires a Session from a loaded dataset.
type Params struct {
	Dataset   *fixtures.Dataset
	Collation language.Tag
	Separator string
	Logger    *logger.Logger
}

// Session holds one manager per collection. Each manager has its own lock;
// the two never wait on each other.
type Session struct {
	stockMu sync.Mutex
	stock   *stock.Manager

	trackingMu sync.Mutex
	tracking   *tracking.Manager
}

// New builds both managers from the dataset.
func New(p Params) *Session {
	return &Session{
		stock: stock.NewManager(p.Dataset.Stock, stock.Options{
			Categories: p.Dataset.Categories,
			Collation:  p.Collation,
			Logger:     p.Logger,
		}),
		tracking: tracking.NewManager(p.Dataset.Tracking, tracking.Options{
			Reference: p.Dataset.Reference,
			Separator: p.Separator,
			Logger:    p.Logger,
		}),
	}
}

// NewWithManagers wraps already constructed managers.
func NewWithManagers(stockMgr *stock.Manager, trackingMgr *tracking.Manager) *Session {
	return &Session{stock: stockMgr, tracking: trackingMgr}
}

// Stock runs fn with exclusive access to the stock manager.
func (s *Session) Stock(fn func(*stock.Manager) error) error {
	s.stockMu.Lock()
	defer s.stockMu.Unlock()
	return fn(s.stock)
}

// Tracking runs fn with exclusive access to the tracking manager.
func (s *Session) Tracking(fn func(*tracking.Manager) error) error {
	s.trackingMu.Lock()
	defer s.trackingMu.Unlock()
	return fn(s.tracking)
}
