package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/tattvam/app/access"
	"github.com/shashiranjanraj/tattvam/app/services"
	"github.com/shashiranjanraj/tattvam/pkg/bind"
	"github.com/shashiranjanraj/tattvam/pkg/response"
)

// quantityInput is the cart item quantity-update request body. No
// validate tag on purpose: zero and negative quantities mean removal.
type quantityInput struct {
	Quantity int `json:"quantity"`
}

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// Get handles GET /cart.
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)
	response.Success(w, c.service.View(identity.UserID))
}

// Add handles POST /cart/add, accumulating onto any existing entry.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	var in services.CartItemInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.Add(identity.UserID, in.ProductID, in.Quantity); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, c.service.View(identity.UserID))
}

// UpdateItem handles PUT /cart/{product_id}. A quantity <= 0 removes
// the entry.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	productID, err := uintParam(r, "product_id")
	if err != nil {
		response.AppError(w, err)
		return
	}

	var in quantityInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.SetQuantity(identity.UserID, productID, in.Quantity); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, c.service.View(identity.UserID))
}

// Remove handles DELETE /cart/{product_id}.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	productID, err := uintParam(r, "product_id")
	if err != nil {
		response.AppError(w, err)
		return
	}

	if err := c.service.Remove(identity.UserID, productID); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, c.service.View(identity.UserID))
}

// Clear handles DELETE /cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)
	c.service.Clear(identity.UserID)
	response.Success(w, map[string]string{"message": "Cart cleared"})
}
