// Package store holds the shopping list and keeps it in sync with a
// key-value slot. Every mutation rewrites the whole list to the slot.
// A ListStore is meant to be driven from a single goroutine.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Makepad-fr/shoplist/internal/model"
)

// ListStore is the single source of truth for the item collection.
type ListStore struct {
	kv    KV
	log   *zap.Logger
	newID func() string

	items   []model.Item
	lastErr error
}

// Option configures a ListStore.
type Option func(*ListStore)

// WithLogger sets the logger used for load fallbacks and save failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *ListStore) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator replaces the UUID generator. Tests use it for stable ids.
func WithIDGenerator(f func() string) Option {
	return func(s *ListStore) {
		if f != nil {
			s.newID = f
		}
	}
}

// New builds a store over kv and seeds it from the slot.
func New(kv KV, opts ...Option) *ListStore {
	s := &ListStore{
		kv:    kv,
		log:   zap.NewNop(),
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	s.items = s.Load()
	return s
}

// Items returns a snapshot of the collection. Callers may keep it; later
// mutations never write into a returned slice.
func (s *ListStore) Items() []model.Item {
	return slices.Clone(s.items)
}

// Len is the number of items in the collection.
func (s *ListStore) Len() int { return len(s.items) }

// Err is the last persistence failure, or nil if the latest save succeeded.
// A load that fell back to the seed because the slot could not be read or
// decoded leaves its error here until the next save.
func (s *ListStore) Err() error { return s.lastErr }

// Load reads the slot. Missing or unusable data yields the seed set.
func (s *ListStore) Load() []model.Item {
	b, found, err := s.kv.Get(StorageKey)
	if err != nil {
		perr := &PersistenceError{Op: "load", Key: StorageKey, Err: err}
		s.lastErr = perr
		s.log.Error("load failed, using seed items", zap.String("key", StorageKey), zap.Error(err))
		return Seed()
	}
	if !found {
		s.log.Info("no stored list, using seed items", zap.String("key", StorageKey))
		return Seed()
	}
	items, err := decode(b)
	if err != nil {
		s.lastErr = &PersistenceError{Op: "decode", Key: StorageKey, Err: err}
		s.log.Warn("stored list unreadable, using seed items", zap.String("key", StorageKey), zap.Error(err))
		return Seed()
	}
	return items
}

// Save writes items to the slot. A failure is logged and kept in Err; the
// in-memory collection is not touched either way.
func (s *ListStore) Save(items []model.Item) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err == nil {
		err = s.kv.Set(StorageKey, b)
	}
	if err != nil {
		s.lastErr = &PersistenceError{Op: "save", Key: StorageKey, Err: err}
		s.log.Error("save failed", zap.String("key", StorageKey), zap.Int("items", len(items)), zap.Error(err))
		return
	}
	s.lastErr = nil
	s.log.Debug("saved", zap.String("key", StorageKey), zap.Int("items", len(items)))
}

// Add appends a new item and persists. Blank names, unknown categories and
// invalid prices are rejected with a *ValidationError and leave the collection unchanged.
func (s *ListStore) Add(name string, quantity int, category model.Category, price *float64) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, &ValidationError{Field: "name", Err: ErrEmptyName}
	}
	if !category.Valid() {
		return model.Item{}, &ValidationError{Field: "category", Err: fmt.Errorf("unknown category %q", category)}
	}
	if price != nil && !model.ValidPrice(*price) {
		return model.Item{}, &ValidationError{Field: "price", Err: fmt.Errorf("must be a finite non-negative number, got %v", *price)}
	}
	it := model.Item{
		ID:       s.newID(),
		Name:     name,
		Quantity: quantity,
		Category: category,
	}
	if price != nil {
		p := *price
		it.Price = &p
	}
	s.commit(append(slices.Clone(s.items), it))
	return it, nil
}

// Toggle flips Completed on the item with id. Unknown ids are ignored.
func (s *ListStore) Toggle(id string) {
	next := slices.Clone(s.items)
	for i := range next {
		if next[i].ID == id {
			next[i].Completed = !next[i].Completed
		}
	}
	s.commit(next)
}

// Remove deletes the item with id. Unknown ids are ignored.
func (s *ListStore) Remove(id string) {
	s.commit(slices.DeleteFunc(slices.Clone(s.items), func(it model.Item) bool {
		return it.ID == id
	}))
}

// ClearCompleted drops every completed item.
func (s *ListStore) ClearCompleted() {
	s.commit(slices.DeleteFunc(slices.Clone(s.items), func(it model.Item) bool {
		return it.Completed
	}))
}

func (s *ListStore) commit(next []model.Item) {
	s.items = next
	s.Save(s.items)
}

func decode(b []byte) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		return nil, errors.New("json unmarshal: not an array")
	}
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		switch {
		case it.ID == "":
			return nil, fmt.Errorf("item %d: missing id", i)
		case strings.TrimSpace(it.Name) == "":
			return nil, fmt.Errorf("item %d: missing name", i)
		case !it.Category.Valid():
			return nil, fmt.Errorf("item %d: unknown category %q", i, it.Category)
		case it.Price != nil && !model.ValidPrice(*it.Price):
			return nil, fmt.Errorf("item %d: invalid price %v", i, *it.Price)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return items, nil
}
