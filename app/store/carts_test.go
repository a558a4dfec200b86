package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tattvam/app/store"
)

func TestGetEmptyCart(t *testing.T) {
	s := store.NewCartStore()

	assert.Empty(t, s.Get(1))
	// reading must not create a cart
	assert.False(t, s.Clear(1))
}

func TestAddAccumulates(t *testing.T) {
	s := store.NewCartStore()

	s.Add(1, 10, 2)
	s.Add(1, 10, 3)

	items := s.Get(1)
	require.Len(t, items, 1)
	assert.Equal(t, uint(10), items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := store.NewCartStore()

	s.Add(1, 30, 1)
	s.Add(1, 10, 1)
	s.Add(1, 20, 1)
	s.Add(1, 10, 2) // accumulate, must not reorder

	items := s.Get(1)
	require.Len(t, items, 3)
	assert.Equal(t, uint(30), items[0].ProductID)
	assert.Equal(t, uint(10), items[1].ProductID)
	assert.Equal(t, uint(20), items[2].ProductID)
}

func TestSetQuantity(t *testing.T) {
	s := store.NewCartStore()
	s.Add(1, 10, 2)

	require.True(t, s.SetQuantity(1, 10, 7))
	assert.Equal(t, 7, s.Get(1)[0].Quantity)

	// zero or negative behaves as removal
	require.True(t, s.SetQuantity(1, 10, 0))
	assert.Empty(t, s.Get(1))

	// no entry → false
	assert.False(t, s.SetQuantity(1, 99, 3))
}

func TestRemove(t *testing.T) {
	s := store.NewCartStore()
	s.Add(1, 10, 2)
	s.Add(1, 20, 1)

	assert.True(t, s.Remove(1, 10))
	assert.False(t, s.Remove(1, 10))

	items := s.Get(1)
	require.Len(t, items, 1)
	assert.Equal(t, uint(20), items[0].ProductID)
}

func TestRemoveNonexistentLeavesCartUnchanged(t *testing.T) {
	s := store.NewCartStore()
	s.Add(1, 10, 2)

	assert.False(t, s.Remove(1, 99))

	items := s.Get(1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestClear(t *testing.T) {
	s := store.NewCartStore()
	s.Add(1, 10, 2)

	assert.True(t, s.Clear(1))
	assert.Empty(t, s.Get(1))
	// cart still exists, just empty
	assert.True(t, s.Clear(1))
}

func TestItemCount(t *testing.T) {
	s := store.NewCartStore()

	assert.Zero(t, s.ItemCount(1))

	s.Add(1, 10, 2)
	s.Add(1, 20, 3)
	assert.Equal(t, 5, s.ItemCount(1))
}

func TestCartsAreScopedPerUser(t *testing.T) {
	s := store.NewCartStore()

	s.Add(1, 10, 2)
	s.Add(2, 10, 9)

	assert.Equal(t, 2, s.Get(1)[0].Quantity)
	assert.Equal(t, 9, s.Get(2)[0].Quantity)
}

func TestGetReturnsCopy(t *testing.T) {
	s := store.NewCartStore()
	s.Add(1, 10, 2)

	items := s.Get(1)
	items[0].Quantity = 100

	assert.Equal(t, 2, s.Get(1)[0].Quantity)
}
