// Package store keeps reviews in insertion order in memory and mirrors every
// append to a durable backend before reporting success.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/models"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/timestamp"
)

var ErrDuplicateID = errors.New("review id already exists")

// Persister is the durable side of the store.
type Persister interface {
	// Load returns every stored review in insertion order.
	Load() ([]models.Review, error)
	// Append durably records added. all is the full collection including added,
	// for backends that rewrite everything.
	Append(all []models.Review, added models.Review) error
}

// Entry is a stored review with its timestamp parsed once at load or append.
type Entry struct {
	models.Review
	At    time.Time
	Dated bool
}

func newEntry(r models.Review) Entry {
	at, ok := timestamp.Normalize(r.Timestamp)
	return Entry{Review: r, At: at, Dated: ok}
}

type ReviewStore struct {
	mu        sync.RWMutex
	persister Persister
	entries   []Entry
	ids       map[string]struct{}
}

// New loads all reviews from p.
func New(p Persister) (*ReviewStore, error) {
	reviews, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	s := &ReviewStore{
		persister: p,
		entries:   make([]Entry, 0, len(reviews)),
		ids:       make(map[string]struct{}, len(reviews)),
	}
	for _, r := range reviews {
		s.entries = append(s.entries, newEntry(r))
		s.ids[r.ReviewId] = struct{}{}
	}
	return s, nil
}

// Append adds r to the end of the store. If the durable write fails the
// in-memory append is rolled back and the error returned.
func (s *ReviewStore) Append(r models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[r.ReviewId]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, r.ReviewId)
	}

	s.entries = append(s.entries, newEntry(r))
	if err := s.persister.Append(s.reviewsLocked(), r); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return fmt.Errorf("persist review %s: %w", r.ReviewId, err)
	}
	s.ids[r.ReviewId] = struct{}{}
	return nil
}

// Snapshot returns a copy of the entries as of a single point in time.
func (s *ReviewStore) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// All returns a copy of the stored reviews in insertion order.
func (s *ReviewStore) All() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reviewsLocked()
}

func (s *ReviewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *ReviewStore) reviewsLocked() []models.Review {
	out := make([]models.Review, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Review
	}
	return out
}
