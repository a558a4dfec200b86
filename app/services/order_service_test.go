package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/services"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
)

func newOrderFixture() (*services.OrderService, *services.CartService, *store.Store) {
	s := store.New()
	s.Products.Create(models.Product{Name: "Premium Basmati Rice", Description: "rice", Price: 450, Category: "Food & Grocery", Stock: 100})
	s.Products.Create(models.Product{Name: "Turmeric Powder", Description: "turmeric", Price: 180, Category: "Food & Grocery", Stock: 200})
	orders := services.NewOrderService(s.Products, s.Carts, s.Orders)
	carts := services.NewCartService(s.Products, s.Carts)
	return orders, carts, s
}

func user(id uint) models.Identity  { return models.Identity{UserID: id, Role: models.RoleUser} }
func admin(id uint) models.Identity { return models.Identity{UserID: id, Role: models.RoleAdmin} }

func TestCreateOrderFromCartScenario(t *testing.T) {
	orders, carts, _ := newOrderFixture()

	// seed: 2 × product 1 (price 450) → cart total 900
	require.NoError(t, carts.Add(1, 1, 2))
	require.InDelta(t, 900, carts.Total(1), 1e-9)

	order, err := orders.Create(1, services.OrderInput{
		Items:           carts.View(1).ItemsAsOrderItems(),
		ShippingAddress: "42 MG Road, Bengaluru",
	})
	require.NoError(t, err)

	assert.InDelta(t, 900, order.TotalAmount, 1e-9)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Empty(t, carts.View(1).Items, "order creation must empty the cart")
}

func TestOrderTotalIndependentOfLaterPriceChanges(t *testing.T) {
	orders, _, s := newOrderFixture()

	order, err := orders.Create(1, services.OrderInput{
		Items:           []models.OrderItem{{ProductID: 1, Quantity: 2}},
		ShippingAddress: "addr",
	})
	require.NoError(t, err)
	require.InDelta(t, 900, order.TotalAmount, 1e-9)

	price := 9000.0
	_, ok := s.Products.Update(1, models.ProductPatch{Price: &price})
	require.True(t, ok)

	got, err := orders.Get(user(1), order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 900, got.TotalAmount, 1e-9)
}

func TestCreateOrderValidation(t *testing.T) {
	orders, _, _ := newOrderFixture()

	_, err := orders.Create(1, services.OrderInput{ShippingAddress: "addr"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = orders.Create(1, services.OrderInput{
		Items:           []models.OrderItem{{ProductID: 1, Quantity: 1}},
		ShippingAddress: "   ",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = orders.Create(1, services.OrderInput{
		Items:           []models.OrderItem{{ProductID: 1, Quantity: 0}},
		ShippingAddress: "addr",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = orders.Create(1, services.OrderInput{
		Items:           []models.OrderItem{{ProductID: 999, Quantity: 1}},
		ShippingAddress: "addr",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOrderOwnership(t *testing.T) {
	orders, _, _ := newOrderFixture()

	order, err := orders.Create(1, services.OrderInput{
		Items:           []models.OrderItem{{ProductID: 1, Quantity: 1}},
		ShippingAddress: "addr",
	})
	require.NoError(t, err)

	// another user's fetch is Forbidden, not NotFound
	_, err = orders.Get(user(2), order.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = orders.Get(user(1), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// an admin may view anyone's order
	_, err = orders.Get(admin(9), order.ID)
	assert.NoError(t, err)
}

func TestListNeverLeaksAcrossUsers(t *testing.T) {
	orders, _, _ := newOrderFixture()

	item := []models.OrderItem{{ProductID: 1, Quantity: 1}}
	_, err := orders.Create(1, services.OrderInput{Items: item, ShippingAddress: "a"})
	require.NoError(t, err)
	_, err = orders.Create(2, services.OrderInput{Items: item, ShippingAddress: "b"})
	require.NoError(t, err)

	for _, o := range orders.List(user(1), 0, 100) {
		assert.Equal(t, uint(1), o.UserID)
	}

	assert.Len(t, orders.List(admin(9), 0, 100), 2)
}

func TestUpdateStatusTransitions(t *testing.T) {
	orders, _, _ := newOrderFixture()

	order, err := orders.Create(1, services.OrderInput{
		Items:           []models.OrderItem{{ProductID: 1, Quantity: 1}},
		ShippingAddress: "addr",
	})
	require.NoError(t, err)

	// pending → shipped skips processing: rejected
	_, err = orders.UpdateStatus(user(1), order.ID, "shipped")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// unknown status string: rejected
	_, err = orders.UpdateStatus(user(1), order.ID, "lost-in-transit")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// someone else's order: Forbidden
	_, err = orders.UpdateStatus(user(2), order.ID, "processing")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := orders.UpdateStatus(user(1), order.ID, "processing")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	// any non-terminal state may be cancelled
	updated, err = orders.UpdateStatus(admin(9), order.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)

	// cancelled is terminal
	_, err = orders.UpdateStatus(admin(9), order.ID, "processing")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
