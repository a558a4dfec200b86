package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
)

func TestCreateOrder(t *testing.T) {
	s := store.NewOrderStore()

	o := s.Create(models.Order{
		UserID:          1,
		Items:           []models.OrderItem{{ProductID: 1, Quantity: 2}},
		TotalAmount:     900,
		ShippingAddress: "42 MG Road, Bengaluru",
	})

	assert.Equal(t, uint(1), o.ID)
	assert.Equal(t, models.StatusPending, o.Status)
	assert.False(t, o.CreatedAt.IsZero())
	assert.Nil(t, o.UpdatedAt)
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	s := store.NewOrderStore()

	items := []models.OrderItem{{ProductID: 1, Quantity: 2}}
	o := s.Create(models.Order{UserID: 1, Items: items})

	// mutating the caller's slice must not affect the stored order
	items[0].Quantity = 99
	o.Items[0].Quantity = 50

	stored, ok := s.Get(o.ID)
	require.True(t, ok)
	assert.Equal(t, 2, stored.Items[0].Quantity)
}

func TestListForUserNewestFirst(t *testing.T) {
	s := store.NewOrderStore()

	first := s.Create(models.Order{UserID: 1})
	s.Create(models.Order{UserID: 2})
	third := s.Create(models.Order{UserID: 1})

	orders := s.ListForUser(1, 0, 100)
	require.Len(t, orders, 2)
	// created in the same instant or not, higher id wins ties
	assert.Equal(t, third.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestListForUserNeverLeaksOtherUsers(t *testing.T) {
	s := store.NewOrderStore()
	s.Create(models.Order{UserID: 1})
	s.Create(models.Order{UserID: 2})

	for _, o := range s.ListForUser(1, 0, 100) {
		assert.Equal(t, uint(1), o.UserID)
	}
}

func TestListForUserPagination(t *testing.T) {
	s := store.NewOrderStore()
	for i := 0; i < 5; i++ {
		s.Create(models.Order{UserID: 1})
	}

	page := s.ListForUser(1, 2, 2)
	require.Len(t, page, 2)
	assert.Equal(t, uint(3), page[0].ID)
	assert.Equal(t, uint(2), page[1].ID)

	assert.Empty(t, s.ListForUser(1, 50, 10))
}

func TestSetStatus(t *testing.T) {
	s := store.NewOrderStore()
	o := s.Create(models.Order{UserID: 1})

	updated, ok := s.SetStatus(o.ID, models.StatusProcessing)
	require.True(t, ok)
	assert.Equal(t, models.StatusProcessing, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	_, ok = s.SetStatus(999, models.StatusProcessing)
	assert.False(t, ok)
}

func TestStatusTransitionTable(t *testing.T) {
	assert.True(t, models.StatusPending.CanTransitionTo(models.StatusProcessing))
	assert.True(t, models.StatusProcessing.CanTransitionTo(models.StatusShipped))
	assert.True(t, models.StatusShipped.CanTransitionTo(models.StatusDelivered))
	assert.True(t, models.StatusPending.CanTransitionTo(models.StatusCancelled))
	assert.True(t, models.StatusShipped.CanTransitionTo(models.StatusCancelled))

	assert.False(t, models.StatusPending.CanTransitionTo(models.StatusShipped))
	assert.False(t, models.StatusDelivered.CanTransitionTo(models.StatusCancelled))
	assert.False(t, models.StatusCancelled.CanTransitionTo(models.StatusPending))
	assert.False(t, models.StatusPending.CanTransitionTo(models.OrderStatus("lost")))

	assert.True(t, models.StatusCancelled.Valid())
	assert.False(t, models.OrderStatus("lost").Valid())
}

func TestStoreReset(t *testing.T) {
	s := store.New()
	s.Products.Create(models.Product{Name: "x", Price: 1, Category: "c"})
	s.Orders.Create(models.Order{UserID: 1})

	s.Reset()

	assert.Empty(t, s.Products.List("", "", 0, 100))
	p := s.Products.Create(models.Product{Name: "y", Price: 1, Category: "c"})
	assert.Equal(t, uint(1), p.ID) // id sequence restarted
}
