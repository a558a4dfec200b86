package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/tattvam/app/access"
	"github.com/shashiranjanraj/tattvam/app/services"
	"github.com/shashiranjanraj/tattvam/pkg/bind"
	"github.com/shashiranjanraj/tattvam/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Create handles POST /orders.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	var in services.OrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Create(identity.UserID, in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Created(w, order)
}

// List handles GET /orders. Admins see every order, users their own.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", services.DefaultPageSize)

	response.Success(w, c.service.List(identity, skip, limit))
}

// Get handles GET /orders/{id}.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	id, err := uintParam(r, "id")
	if err != nil {
		response.AppError(w, err)
		return
	}

	order, err := c.service.Get(identity, id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, order)
}

// UpdateStatus handles PUT /orders/{id}/status.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	id, err := uintParam(r, "id")
	if err != nil {
		response.AppError(w, err)
		return
	}

	var in services.StatusInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.UpdateStatus(identity, id, in.Status)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, order)
}
