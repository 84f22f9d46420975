// Package store owns the in-memory entity collections and flushes them to
// the key-value medium after every mutation. Derivation services never touch
// it directly; they work on the snapshots it hands out.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mazraa/farmbook/internal/domain/models"
	"github.com/mazraa/farmbook/internal/repository/kv"
)

// Collection keys in the storage medium, one entry per collection.
const (
	keyAnimals         = "animals"
	keyMilkEntries     = "milkEntries"
	keyFeedPurchases   = "feedPurchases"
	keyFeedConsumption = "feedConsumption"
	keyHealthEvents    = "healthEvents"
	keyCustomers       = "customers"
	keySales           = "sales"
)

type record interface {
	RecordID() int64
}

// Store holds the live application state. One logical user mutates it, but
// the HTTP adapter can overlap requests, so a mutex guards the collections.
type Store struct {
	mu     sync.Mutex
	kv     kv.Store
	logger *zap.Logger
	snap   models.Snapshot
	nextID int64
}

// Load reads the persisted collections and builds the store. A medium that
// cannot be read, or a collection that does not decode, degrades to its
// empty state with a warning; startup never fails on bad state.
func Load(ctx context.Context, medium kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{kv: medium, logger: logger, snap: models.EmptySnapshot()}

	loadCollection(ctx, s, keyAnimals, &s.snap.Animals)
	loadCollection(ctx, s, keyMilkEntries, &s.snap.MilkEntries)
	loadCollection(ctx, s, keyFeedPurchases, &s.snap.FeedPurchases)
	loadCollection(ctx, s, keyFeedConsumption, &s.snap.FeedConsumption)
	loadCollection(ctx, s, keyHealthEvents, &s.snap.HealthEvents)
	loadCollection(ctx, s, keyCustomers, &s.snap.Customers)
	loadCollection(ctx, s, keySales, &s.snap.Sales)

	s.nextID = s.highestID() + 1
	logger.Info("state loaded",
		zap.Int("animals", len(s.snap.Animals)),
		zap.Int("milkEntries", len(s.snap.MilkEntries)),
		zap.Int("sales", len(s.snap.Sales)))
	return s
}

func loadCollection[T any](ctx context.Context, s *Store, key string, dest *[]T) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("collection unreadable, starting empty", zap.String("key", key), zap.Error(err))
		return
	}
	if !found || len(raw) == 0 {
		return
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("collection corrupt, starting empty", zap.String("key", key), zap.Error(err))
		return
	}
	*dest = items
}

// Snapshot returns a deep copy of the current state for derivation queries.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Export returns the whole state in its backup shape. Identical to Snapshot;
// the separate name keeps the backup contract explicit.
func (s *Store) Export() models.Snapshot {
	return s.Snapshot()
}

// Import replaces the whole state with the given snapshot and flushes it.
// The id sequence restarts above the highest imported id.
func (s *Store) Import(ctx context.Context, snap models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap.Clone()
	s.nextID = s.highestID() + 1
	return s.flush(ctx)
}

// Animals

// AddAnimal validates, assigns an id, appends and flushes.
func (s *Store) AddAnimal(ctx context.Context, a models.Animal) (models.Animal, error) {
	if err := a.Validate(); err != nil {
		return models.Animal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.allocID()
	s.snap.Animals = append(s.snap.Animals, a)
	return a, s.flush(ctx)
}

// UpdateAnimal replaces the stored record with the same id.
func (s *Store) UpdateAnimal(ctx context.Context, a models.Animal) (models.Animal, error) {
	if err := a.Validate(); err != nil {
		return models.Animal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.Animals, a.ID)
	if i < 0 {
		return models.Animal{}, NotFoundError{Collection: keyAnimals, ID: a.ID}
	}
	s.snap.Animals[i] = a
	return a, s.flush(ctx)
}

// RemoveAnimal deletes by id; removing an absent id is a no-op. Health
// events that reference the animal are left in place (weak reference).
func (s *Store) RemoveAnimal(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.Animals, id)
	if i < 0 {
		return nil
	}
	s.snap.Animals = append(s.snap.Animals[:i], s.snap.Animals[i+1:]...)
	return s.flush(ctx)
}

// Milk entries

// AddMilkEntry validates, assigns an id, appends and flushes. Duplicate
// (date, session) pairs are allowed; the production aggregator sums them.
func (s *Store) AddMilkEntry(ctx context.Context, m models.MilkEntry) (models.MilkEntry, error) {
	if err := m.Validate(); err != nil {
		return models.MilkEntry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.allocID()
	s.snap.MilkEntries = append(s.snap.MilkEntries, m)
	return m, s.flush(ctx)
}

// UpdateMilkEntry replaces the stored record with the same id.
func (s *Store) UpdateMilkEntry(ctx context.Context, m models.MilkEntry) (models.MilkEntry, error) {
	if err := m.Validate(); err != nil {
		return models.MilkEntry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.MilkEntries, m.ID)
	if i < 0 {
		return models.MilkEntry{}, NotFoundError{Collection: keyMilkEntries, ID: m.ID}
	}
	s.snap.MilkEntries[i] = m
	return m, s.flush(ctx)
}

// RemoveMilkEntry deletes by id; removing an absent id is a no-op.
func (s *Store) RemoveMilkEntry(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.MilkEntries, id)
	if i < 0 {
		return nil
	}
	s.snap.MilkEntries = append(s.snap.MilkEntries[:i], s.snap.MilkEntries[i+1:]...)
	return s.flush(ctx)
}

// Feed purchases

// AddFeedPurchase derives the total cost at write time, then validates,
// assigns an id, appends and flushes.
func (s *Store) AddFeedPurchase(ctx context.Context, p models.FeedPurchase) (models.FeedPurchase, error) {
	p = p.WithDerivedCost()
	if err := p.Validate(); err != nil {
		return models.FeedPurchase{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.allocID()
	s.snap.FeedPurchases = append(s.snap.FeedPurchases, p)
	return p, s.flush(ctx)
}

// UpdateFeedPurchase replaces the stored record with the same id. The total
// cost is re-derived from the submitted quantity and price.
func (s *Store) UpdateFeedPurchase(ctx context.Context, p models.FeedPurchase) (models.FeedPurchase, error) {
	p = p.WithDerivedCost()
	if err := p.Validate(); err != nil {
		return models.FeedPurchase{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.FeedPurchases, p.ID)
	if i < 0 {
		return models.FeedPurchase{}, NotFoundError{Collection: keyFeedPurchases, ID: p.ID}
	}
	s.snap.FeedPurchases[i] = p
	return p, s.flush(ctx)
}

// RemoveFeedPurchase deletes by id; removing an absent id is a no-op.
func (s *Store) RemoveFeedPurchase(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.FeedPurchases, id)
	if i < 0 {
		return nil
	}
	s.snap.FeedPurchases = append(s.snap.FeedPurchases[:i], s.snap.FeedPurchases[i+1:]...)
	return s.flush(ctx)
}

// Feed consumption

// AddFeedConsumption validates, assigns an id, appends and flushes. The
// ledger does not block entries that push a feed type negative.
func (s *Store) AddFeedConsumption(ctx context.Context, c models.FeedConsumption) (models.FeedConsumption, error) {
	if err := c.Validate(); err != nil {
		return models.FeedConsumption{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.allocID()
	s.snap.FeedConsumption = append(s.snap.FeedConsumption, c)
	return c, s.flush(ctx)
}

// UpdateFeedConsumption replaces the stored record with the same id.
func (s *Store) UpdateFeedConsumption(ctx context.Context, c models.FeedConsumption) (models.FeedConsumption, error) {
	if err := c.Validate(); err != nil {
		return models.FeedConsumption{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.FeedConsumption, c.ID)
	if i < 0 {
		return models.FeedConsumption{}, NotFoundError{Collection: keyFeedConsumption, ID: c.ID}
	}
	s.snap.FeedConsumption[i] = c
	return c, s.flush(ctx)
}

// RemoveFeedConsumption deletes by id; removing an absent id is a no-op.
func (s *Store) RemoveFeedConsumption(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.FeedConsumption, id)
	if i < 0 {
		return nil
	}
	s.snap.FeedConsumption = append(s.snap.FeedConsumption[:i], s.snap.FeedConsumption[i+1:]...)
	return s.flush(ctx)
}

// Health events

// AddHealthEvent validates, assigns an id, appends and flushes.
func (s *Store) AddHealthEvent(ctx context.Context, e models.HealthEvent) (models.HealthEvent, error) {
	if err := e.Validate(); err != nil {
		return models.HealthEvent{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.allocID()
	s.snap.HealthEvents = append(s.snap.HealthEvents, e)
	return e, s.flush(ctx)
}

// UpdateHealthEvent replaces the stored record with the same id.
func (s *Store) UpdateHealthEvent(ctx context.Context, e models.HealthEvent) (models.HealthEvent, error) {
	if err := e.Validate(); err != nil {
		return models.HealthEvent{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.HealthEvents, e.ID)
	if i < 0 {
		return models.HealthEvent{}, NotFoundError{Collection: keyHealthEvents, ID: e.ID}
	}
	s.snap.HealthEvents[i] = e
	return e, s.flush(ctx)
}

// RemoveHealthEvent deletes by id; removing an absent id is a no-op.
func (s *Store) RemoveHealthEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.HealthEvents, id)
	if i < 0 {
		return nil
	}
	s.snap.HealthEvents = append(s.snap.HealthEvents[:i], s.snap.HealthEvents[i+1:]...)
	return s.flush(ctx)
}

// Customers

// AddCustomer validates, assigns an id, appends and flushes.
func (s *Store) AddCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := c.Validate(); err != nil {
		return models.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.allocID()
	s.snap.Customers = append(s.snap.Customers, c)
	return c, s.flush(ctx)
}

// UpdateCustomer replaces the stored record with the same id.
func (s *Store) UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := c.Validate(); err != nil {
		return models.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.Customers, c.ID)
	if i < 0 {
		return models.Customer{}, NotFoundError{Collection: keyCustomers, ID: c.ID}
	}
	s.snap.Customers[i] = c
	return c, s.flush(ctx)
}

// RemoveCustomer deletes by id; removing an absent id is a no-op. Sales that
// reference the customer are kept and resolve to a placeholder in views.
func (s *Store) RemoveCustomer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.Customers, id)
	if i < 0 {
		return nil
	}
	s.snap.Customers = append(s.snap.Customers[:i], s.snap.Customers[i+1:]...)
	return s.flush(ctx)
}

// Sales

// AddSale validates, assigns an id, appends and flushes. Total, paid and
// debt figures are expected to be derived already (models.NewSale).
func (s *Store) AddSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	if err := sale.Validate(); err != nil {
		return models.Sale{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = s.allocID()
	s.snap.Sales = append(s.snap.Sales, sale)
	return sale, s.flush(ctx)
}

// UpdateSale replaces the stored record with the same id.
func (s *Store) UpdateSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	if err := sale.Validate(); err != nil {
		return models.Sale{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.Sales, sale.ID)
	if i < 0 {
		return models.Sale{}, NotFoundError{Collection: keySales, ID: sale.ID}
	}
	s.snap.Sales[i] = sale
	return sale, s.flush(ctx)
}

// RemoveSale deletes by id; removing an absent id is a no-op.
func (s *Store) RemoveSale(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.snap.Sales, id)
	if i < 0 {
		return nil
	}
	s.snap.Sales = append(s.snap.Sales[:i], s.snap.Sales[i+1:]...)
	return s.flush(ctx)
}

// allocID hands out the next id. Ids only ever grow, also across restarts
// and imports of old backups.
func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) highestID() int64 {
	max := int64(0)
	max = maxID(s.snap.Animals, max)
	max = maxID(s.snap.MilkEntries, max)
	max = maxID(s.snap.FeedPurchases, max)
	max = maxID(s.snap.FeedConsumption, max)
	max = maxID(s.snap.HealthEvents, max)
	max = maxID(s.snap.Customers, max)
	max = maxID(s.snap.Sales, max)
	return max
}

// flush writes every collection to the medium. On failure the in-memory
// mutation stands and the caller gets ErrStalePersistence.
func (s *Store) flush(ctx context.Context) error {
	entries := []struct {
		key   string
		value any
	}{
		{keyAnimals, s.snap.Animals},
		{keyMilkEntries, s.snap.MilkEntries},
		{keyFeedPurchases, s.snap.FeedPurchases},
		{keyFeedConsumption, s.snap.FeedConsumption},
		{keyHealthEvents, s.snap.HealthEvents},
		{keyCustomers, s.snap.Customers},
		{keySales, s.snap.Sales},
	}

	for _, e := range entries {
		raw, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("%w: encode %s: %w", ErrStalePersistence, e.key, err)
		}
		if err := s.kv.Set(ctx, e.key, raw); err != nil {
			s.logger.Error("flush failed", zap.String("key", e.key), zap.Error(err))
			return fmt.Errorf("%w: %w", ErrStalePersistence, err)
		}
	}
	return nil
}

func indexByID[T record](items []T, id int64) int {
	for i, item := range items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

func maxID[T record](items []T, current int64) int64 {
	for _, item := range items {
		if id := item.RecordID(); id > current {
			current = id
		}
	}
	return current
}
