package services

import (
	"strings"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
	"github.com/shashiranjanraj/tattvam/pkg/event"
	"github.com/shashiranjanraj/tattvam/pkg/metrics"
)

// OrderInput is the order-create request body.
type OrderInput struct {
	Items           []models.OrderItem `json:"items"`
	ShippingAddress string             `json:"shipping_address"`
}

// StatusInput is the order status-update request body.
type StatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderService creates orders from cart items and walks them through
// the status lifecycle.
type OrderService struct {
	products *store.ProductStore
	carts    *store.CartStore
	orders   *store.OrderStore
}

func NewOrderService(products *store.ProductStore, carts *store.CartStore, orders *store.OrderStore) *OrderService {
	return &OrderService{products: products, carts: carts, orders: orders}
}

// Create places an order for the given items. The total is computed
// from live catalogue prices at creation time; the items list is
// snapshotted into the order. On success the user's cart is cleared —
// a clear that finds no cart is ignored, order creation is
// authoritative.
func (s *OrderService) Create(userID uint, in OrderInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, apperr.Validation("Order must contain at least one item")
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return models.Order{}, apperr.Validation("Shipping address is required")
	}

	total := 0.0
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return models.Order{}, apperr.Validation("Item quantity must be a positive integer")
		}
		product, ok := s.products.Get(item.ProductID)
		if !ok {
			return models.Order{}, apperr.NotFound("Product")
		}
		total += product.Price * float64(item.Quantity)
	}

	order := s.orders.Create(models.Order{
		UserID:          userID,
		Items:           in.Items,
		TotalAmount:     total,
		ShippingAddress: in.ShippingAddress,
	})

	s.carts.Clear(userID)

	metrics.OrdersCreated.Inc()
	event.Fire("order.created", order)

	return order, nil
}

// List returns orders visible to the identity, newest first: admins see
// every order, users see their own.
func (s *OrderService) List(id models.Identity, skip, limit int) []models.Order {
	if limit <= 0 || limit > DefaultPageSize {
		limit = DefaultPageSize
	}
	if id.IsAdmin() {
		return s.orders.ListAll(skip, limit)
	}
	return s.orders.ListForUser(id.UserID, skip, limit)
}

// Get returns one order. A caller who is neither the owner nor an
// admin gets Forbidden — distinct from NotFound, which means the id
// itself is unknown.
func (s *OrderService) Get(id models.Identity, orderID uint) (models.Order, error) {
	order, ok := s.orders.Get(orderID)
	if !ok {
		return models.Order{}, apperr.NotFound("Order")
	}
	if order.UserID != id.UserID && !id.IsAdmin() {
		return models.Order{}, apperr.Forbidden("Access denied")
	}
	return order, nil
}

// UpdateStatus moves an order to a new status. Unknown statuses and
// transitions outside the allowed graph fail with Validation.
func (s *OrderService) UpdateStatus(id models.Identity, orderID uint, status string) (models.Order, error) {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return models.Order{}, apperr.Validation("Unknown order status")
	}

	order, ok := s.orders.Get(orderID)
	if !ok {
		return models.Order{}, apperr.NotFound("Order")
	}
	if order.UserID != id.UserID && !id.IsAdmin() {
		return models.Order{}, apperr.Forbidden("Access denied")
	}
	if !order.Status.CanTransitionTo(next) {
		return models.Order{}, apperr.Validation("Cannot transition order from " + string(order.Status) + " to " + string(next))
	}

	updated, _ := s.orders.SetStatus(orderID, next)
	return updated, nil
}
