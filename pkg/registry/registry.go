package registry

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/amirasaad/oilfield/pkg/domain/deposit"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrEntryNotFound is returned when no deposit is registered under an ID.
var ErrEntryNotFound = errors.New("deposit not registered")

// Entry is a deposit together with the identity the registry assigned to it.
type Entry struct {
	ID      uuid.UUID
	Number  int // 1-based registration sequence number
	Deposit *deposit.Deposit
}

// Registry owns the instance numbering of the deposits registered with it.
// Numbering starts at 1 and is independent per registry.
// It is safe for concurrent use; the registered deposits are not.
type Registry struct {
	entries map[uuid.UUID]*Entry
	order   []*Entry
	next    int
	mu      sync.RWMutex
	logger  *slog.Logger
}

// New creates an empty registry. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		entries: make(map[uuid.UUID]*Entry),
		logger:  logger,
	}
}

// Register assigns d the next instance number and a fresh ID.
func (r *Registry) Register(d *deposit.Deposit) *Entry {
	r.mu.Lock()
	r.next++
	e := &Entry{ID: uuid.New(), Number: r.next, Deposit: d}
	r.entries[e.ID] = e
	r.order = append(r.order, e)
	r.mu.Unlock()

	logger := r.logger.With("number", e.Number, "id", e.ID, "name", d.Name())
	if d.HasErrors() {
		logger.Warn("Registered deposit with validation errors", "errors", len(d.Errors()))
	} else {
		logger.Debug("Registered deposit")
	}
	return e
}

// Get returns the entry registered under id.
func (r *Registry) Get(id uuid.UUID) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, ErrEntryNotFound
	}
	return e, nil
}

// Unregister removes the entry registered under id. Instance numbers are
// never reused.
func (r *Registry) Unregister(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	r.order = slices.DeleteFunc(r.order, func(e *Entry) bool { return e.ID == id })
	return true
}

// Count returns the number of registered deposits.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// List returns the entries in registration order.
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Sorted returns the entries ordered by extracted quantity, ascending. Entries
// with equal quantities keep their registration order.
func (r *Registry) Sorted() []*Entry {
	out := r.List()
	slices.SortStableFunc(out, func(a, b *Entry) int {
		return a.Deposit.Compare(b.Deposit)
	})
	return out
}

// TotalIncome sums the net income of every registered deposit.
func (r *Registry) TotalIncome() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.List() {
		income, err := e.Deposit.NetIncome()
		if err != nil {
			r.logger.Error("Failed to compute net income", "number", e.Number, "error", err)
			return decimal.Zero, err
		}
		total = total.Add(income)
	}
	return total, nil
}
