package memory

import (
	"sync"

	"github.com/google/uuid"
)

type cloner[T any] interface {
	Clone() T
}

// table is an insertion ordered map of records. Values are cloned on the way
// in and out so callers never share memory with the stored state.
type table[T cloner[T]] struct {
	mu sync.RWMutex

	rows  map[uuid.UUID]T // id -> record
	order []uuid.UUID
}

func newTable[T cloner[T]]() *table[T] {
	return &table[T]{
		rows: make(map[uuid.UUID]T),
	}
}

// insert stores v under id, returning false if id is already present.
func (t *table[T]) insert(id uuid.UUID, v T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		var zero T
		return zero, false
	}

	t.rows[id] = v.Clone()
	t.order = append(t.order, id)

	return v.Clone(), true
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, exists := t.rows[id]
	if !exists {
		var zero T
		return zero, false
	}

	return v.Clone(), true
}

// list returns clones of every record accepted by match, in insertion order.
// The result is never nil.
func (t *table[T]) list(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if match(v) {
			result = append(result, v.Clone())
		}
	}

	return result
}

// update applies fn to the stored record under the write lock and returns a
// clone of the result.
func (t *table[T]) update(id uuid.UUID, fn func(T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, exists := t.rows[id]
	if !exists {
		var zero T
		return zero, false
	}

	fn(v)

	return v.Clone(), true
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rows)
}
