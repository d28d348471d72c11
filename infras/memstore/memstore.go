package memstore

import (
	"errors"
	"sync"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store is a process-scoped, concurrency-safe table of entities keyed by id.
// It is the volatile backing for the repository layer: reads take a shared
// lock, every mutation takes the exclusive lock, and Update applies its
// read-modify-write closure atomically so invariants checked inside the
// closure hold when the write lands. Insertion order is preserved for
// deterministic listings.
type Store[T any] struct {
	mu    sync.RWMutex
	byID  map[string]T
	order []string
	keyOf func(T) string
}

func New[T any](keyOf func(T) string) *Store[T] {
	return &Store[T]{
		byID:  make(map[string]T),
		keyOf: keyOf,
	}
}

// Seed loads initial records, replacing any existing entry with the same key.
func (s *Store[T]) Seed(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		key := s.keyOf(item)

		if _, exists := s.byID[key]; !exists {
			s.order = append(s.order, key)
		}

		s.byID[key] = item
	}
}

func (s *Store[T]) Insert(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keyOf(item)
	if _, exists := s.byID[key]; exists {
		return ErrDuplicateKey
	}

	s.byID[key] = item
	s.order = append(s.order, key)

	return nil
}

func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.byID[key]

	return item, ok
}

func (s *Store[T]) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[key]

	return ok
}

// Update applies fn to the stored entity under the write lock. The entity is
// replaced only if fn succeeds; a failed fn leaves the store unchanged.
func (s *Store[T]) Update(key string, fn func(T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[key]
	if !ok {
		return ErrNotFound
	}

	updated, err := fn(current)
	if err != nil {
		return err
	}

	s.byID[key] = updated

	return nil
}

func (s *Store[T]) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[key]; !ok {
		return ErrNotFound
	}

	delete(s.byID, key)

	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// List returns all entities matching the predicate in insertion order.
// A nil predicate matches everything.
func (s *Store[T]) List(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.order))

	for _, key := range s.order {
		item := s.byID[key]
		if match == nil || match(item) {
			items = append(items, item)
		}
	}

	return items
}

func (s *Store[T]) Count(match func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if match == nil {
		return len(s.order)
	}

	count := 0

	for _, key := range s.order {
		if match(s.byID[key]) {
			count++
		}
	}

	return count
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Paginate slices items for a 1-based page of the given size. Page or limit
// values of zero disable paging.
func Paginate[T any](items []T, page, limit int) []T {
	if page <= 0 || limit <= 0 {
		return items
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// Reverse returns a reversed copy, used for newest-first listings.
func Reverse[T any](items []T) []T {
	reversed := make([]T, len(items))

	for i, item := range items {
		reversed[len(items)-1-i] = item
	}

	return reversed
}
