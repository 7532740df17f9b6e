package catalog

import (
	"log"
	"sync"
	"time"

	"griya/mdp/internal/models"
)

// DefaultConfirmTTL is how long a pending delete waits for an answer.
const DefaultConfirmTTL = 2 * time.Minute

// Store owns an ordered sequence of entities for the lifetime of a view.
// It is safe for concurrent use.
type Store[T models.Entity] struct {
	mu    sync.Mutex
	items []T

	name          string
	logger        *log.Logger
	confirmations Confirmations
	confirmTTL    time.Duration
}

type storeOptions struct {
	name          string
	logger        *log.Logger
	confirmations Confirmations
	confirmTTL    time.Duration
}

// Option configures a Store.
type Option func(*storeOptions)

// WithName sets the name used in log lines and to scope confirmation tokens.
func WithName(name string) Option {
	return func(o *storeOptions) { o.name = name }
}

// WithLogger sets the logger for deletion records.
func WithLogger(l *log.Logger) Option {
	return func(o *storeOptions) { o.logger = l }
}

// WithConfirmations sets where pending delete confirmations are kept.
func WithConfirmations(c Confirmations) Option {
	return func(o *storeOptions) { o.confirmations = c }
}

// WithConfirmTTL sets how long a delete request stays confirmable.
func WithConfirmTTL(ttl time.Duration) Option {
	return func(o *storeOptions) { o.confirmTTL = ttl }
}

// Initialize creates a store holding a copy of seed in the given order.
// Ids are not checked for uniqueness.
func Initialize[T models.Entity](seed []T, opts ...Option) *Store[T] {
	o := storeOptions{
		name:       "store",
		logger:     log.Default(),
		confirmTTL: DefaultConfirmTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.confirmations == nil {
		o.confirmations = NewMemoryConfirmations()
	}

	items := make([]T, len(seed))
	copy(items, seed)

	return &Store[T]{
		items:         items,
		name:          o.name,
		logger:        o.logger,
		confirmations: o.confirmations,
		confirmTTL:    o.confirmTTL,
	}
}

// Name returns the store name.
func (s *Store[T]) Name() string { return s.name }

// Items returns a copy of the current sequence.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of entities in the store.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Find returns the first entity with the given id.
func (s *Store[T]) Find(id int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the entities satisfying pred, in store order.
// The store is not modified. A nil pred matches everything.
// pred runs without the store lock held, so it may call back into the store.
func (s *Store[T]) Filter(pred func(T) bool) []T {
	items := s.Items()
	if pred == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// DeleteByID removes the first entity whose id matches and reports whether
// anything was removed. An absent id leaves the store unchanged.
func (s *Store[T]) DeleteByID(id int) bool {
	s.mu.Lock()
	idx := -1
	for i, item := range s.items {
		if item.EntityID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	s.mu.Unlock()

	s.logger.Printf("%s: deleted entity %d", s.name, id)
	return true
}
