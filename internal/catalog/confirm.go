package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownConfirmation is returned when a token was never issued, was
// already answered, expired, or belongs to another store.
var ErrUnknownConfirmation = errors.New("unknown or expired delete confirmation")

// Pending is an unanswered delete request.
type Pending struct {
	Token     string    `json:"token"`
	Scope     string    `json:"scope"`
	ID        int       `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Confirmations keeps pending delete requests until they are answered.
type Confirmations interface {
	Put(ctx context.Context, p Pending) error
	// Take removes and returns the pending request for token issued under
	// scope. It returns ErrUnknownConfirmation if there is none; a request
	// issued under another scope is left in place.
	Take(ctx context.Context, scope, token string) (Pending, error)
}

// RequestDelete records a pending delete of id and returns the token the
// caller must confirm or decline. The store is not modified. An id that is
// not in the store still gets a token; confirming it is a no-op.
func (s *Store[T]) RequestDelete(ctx context.Context, id int) (Pending, error) {
	p := Pending{
		Token:     uuid.NewString(),
		Scope:     s.name,
		ID:        id,
		ExpiresAt: time.Now().Add(s.confirmTTL),
	}
	if err := s.confirmations.Put(ctx, p); err != nil {
		return Pending{}, fmt.Errorf("failed to record delete request for %s %d: %w", s.name, id, err)
	}
	return p, nil
}

// ConfirmDelete answers a pending request with yes and performs the delete.
// It reports whether an entity was removed.
func (s *Store[T]) ConfirmDelete(ctx context.Context, token string) (bool, error) {
	p, err := s.take(ctx, token)
	if err != nil {
		return false, err
	}
	return s.DeleteByID(p.ID), nil
}

// DeclineDelete answers a pending request with no. The store is never modified.
func (s *Store[T]) DeclineDelete(ctx context.Context, token string) error {
	_, err := s.take(ctx, token)
	return err
}

func (s *Store[T]) take(ctx context.Context, token string) (Pending, error) {
	p, err := s.confirmations.Take(ctx, s.name, token)
	if err != nil {
		return Pending{}, err
	}
	if p.Scope != s.name || time.Now().After(p.ExpiresAt) {
		return Pending{}, ErrUnknownConfirmation
	}
	return p, nil
}

// MemoryConfirmations keeps pending requests in process memory.
type MemoryConfirmations struct {
	mu      sync.Mutex
	pending map[string]Pending
	now     func() time.Time
}

// NewMemoryConfirmations creates an empty in-memory confirmation set.
func NewMemoryConfirmations() *MemoryConfirmations {
	return &MemoryConfirmations{
		pending: make(map[string]Pending),
		now:     time.Now,
	}
}

func (m *MemoryConfirmations) Put(_ context.Context, p Pending) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	m.pending[p.Token] = p
	return nil
}

func (m *MemoryConfirmations) Take(_ context.Context, scope, token string) (Pending, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pending[token]
	if !ok || p.Scope != scope {
		return Pending{}, ErrUnknownConfirmation
	}
	delete(m.pending, token)
	if m.now().After(p.ExpiresAt) {
		return Pending{}, ErrUnknownConfirmation
	}
	return p, nil
}

// sweep drops expired entries. Caller holds m.mu.
func (m *MemoryConfirmations) sweep() {
	now := m.now()
	for token, p := range m.pending {
		if now.After(p.ExpiresAt) {
			delete(m.pending, token)
		}
	}
}

// Deleter is the two-step delete surface of a Store, independent of its
// entity type.
type Deleter interface {
	RequestDelete(ctx context.Context, id int) (Pending, error)
	ConfirmDelete(ctx context.Context, token string) (bool, error)
	DeclineDelete(ctx context.Context, token string) error
}
