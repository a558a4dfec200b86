package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/services"
	"github.com/shashiranjanraj/tattvam/pkg/bind"
	"github.com/shashiranjanraj/tattvam/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /products with category, search, skip and limit
// query parameters.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", services.DefaultPageSize)

	products := c.service.List(q.Get("category"), q.Get("search"), skip, limit)
	response.Success(w, products)
}

// Get handles GET /products/{id}.
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		response.AppError(w, err)
		return
	}

	product, err := c.service.Get(id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, product)
}

// Categories handles GET /products/categories/list.
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.service.Categories())
}

// Create handles POST /products. Admin only, enforced by the route.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	response.Created(w, c.service.Create(in))
}

// Update handles PUT /products/{id}. Admin only.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		response.AppError(w, err)
		return
	}

	var patch models.ProductPatch
	if errs, err := bind.JSON(r, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(id, patch)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, product)
}

// Delete handles DELETE /products/{id}. Admin only.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		response.AppError(w, err)
		return
	}

	if err := c.service.Delete(id); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Product deleted"})
}
