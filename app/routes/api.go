// Package routes wires controllers onto the router. All business
// endpoints live under /api/v1; /health and /metrics sit at the root.
package routes

import (
	"github.com/shashiranjanraj/tattvam/app/access"
	"github.com/shashiranjanraj/tattvam/app/controllers"
	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/services"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/metrics"
	"github.com/shashiranjanraj/tattvam/pkg/rbac"
	"github.com/shashiranjanraj/tattvam/pkg/router"
)

// RegisterAPI mounts every route on r, backed by s.
func RegisterAPI(r *router.Router, s *store.Store) {
	authService := services.NewAuthService(s.Users)
	productService := services.NewProductService(s.Products)
	cartService := services.NewCartService(s.Products, s.Carts)
	orderService := services.NewOrderService(s.Products, s.Carts, s.Orders)

	authController := controllers.NewAuthController(authService)
	productController := controllers.NewProductController(productService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)
	healthController := controllers.NewHealthController()

	r.Get("/health", "health.check", healthController.Check)
	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	authed := api.Group("", access.Middleware(s.Users))
	adminOnly := rbac.HasRole(access.RoleFromRequest, models.RoleAdmin)

	// auth
	api.Post("/auth/register", "auth.register", authController.Register)
	api.Post("/auth/login", "auth.login", authController.Login)
	authed.Get("/auth/me", "auth.me", authController.Me)
	authed.Put("/auth/me", "auth.update", authController.UpdateMe)

	// catalogue: browsing is public, mutation is admin only
	api.Get("/products", "products.list", productController.List)
	api.Get("/products/categories/list", "products.categories", productController.Categories)
	api.Get("/products/{id}", "products.get", productController.Get)
	authed.Post("/products", "products.create", productController.Create, adminOnly)
	authed.Put("/products/{id}", "products.update", productController.Update, adminOnly)
	authed.Delete("/products/{id}", "products.delete", productController.Delete, adminOnly)

	// cart
	authed.Get("/cart", "cart.get", cartController.Get)
	authed.Delete("/cart", "cart.clear", cartController.Clear)
	authed.Post("/cart/add", "cart.add", cartController.Add)
	authed.Put("/cart/{product_id}", "cart.update", cartController.UpdateItem)
	authed.Delete("/cart/{product_id}", "cart.remove", cartController.Remove)

	// orders
	authed.Post("/orders", "orders.create", orderController.Create)
	authed.Get("/orders", "orders.list", orderController.List)
	authed.Get("/orders/{id}", "orders.get", orderController.Get)
	authed.Put("/orders/{id}/status", "orders.status", orderController.UpdateStatus)
}
