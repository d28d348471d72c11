package memstore_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/infras/memstore"
)

type record struct {
	ID    string
	Value int
}

func newStore() *memstore.Store[record] {
	return memstore.New(func(r record) string { return r.ID })
}

func TestInsertGet(t *testing.T) {
	store := newStore()

	require.NoError(t, store.Insert(record{ID: "a", Value: 1}))

	got, ok := store.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, got.Value)

	assert.ErrorIs(t, store.Insert(record{ID: "a", Value: 2}), memstore.ErrDuplicateKey)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestUpdate_AtomicAndAllOrNothing(t *testing.T) {
	store := newStore()
	store.Seed(record{ID: "a", Value: 1})

	err := store.Update("a", func(r record) (record, error) {
		r.Value = 2
		return r, nil
	})
	require.NoError(t, err)

	got, _ := store.Get("a")
	assert.Equal(t, 2, got.Value)

	// A failing closure must not mutate the stored record.
	boom := errors.New("boom")
	err = store.Update("a", func(r record) (record, error) {
		r.Value = 99
		return r, boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ = store.Get("a")
	assert.Equal(t, 2, got.Value)

	assert.ErrorIs(t, store.Update("missing", func(r record) (record, error) { return r, nil }), memstore.ErrNotFound)
}

func TestList_InsertionOrder(t *testing.T) {
	store := newStore()
	store.Seed(record{ID: "a", Value: 1}, record{ID: "b", Value: 2}, record{ID: "c", Value: 3})

	all := store.List(nil)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[2].ID)

	even := store.List(func(r record) bool { return r.Value%2 == 0 })
	require.Len(t, even, 1)
	assert.Equal(t, "b", even[0].ID)

	assert.Equal(t, 3, store.Count(nil))
	assert.Equal(t, 1, store.Count(func(r record) bool { return r.Value%2 == 0 }))
}

func TestDelete(t *testing.T) {
	store := newStore()
	store.Seed(record{ID: "a"}, record{ID: "b"})

	require.NoError(t, store.Delete("a"))
	assert.ErrorIs(t, store.Delete("a"), memstore.ErrNotFound)
	assert.Equal(t, 1, store.Len())
}

func TestConcurrentUpdates(t *testing.T) {
	store := newStore()
	store.Seed(record{ID: "a", Value: 0})

	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_ = store.Update("a", func(r record) (record, error) {
				r.Value++
				return r, nil
			})
		}()
	}

	wg.Wait()

	got, _ := store.Get("a")
	assert.Equal(t, 100, got.Value)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, memstore.Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, memstore.Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, memstore.Paginate(items, 3, 2))
	assert.Empty(t, memstore.Paginate(items, 4, 2))
	assert.Equal(t, items, memstore.Paginate(items, 0, 0))
}
