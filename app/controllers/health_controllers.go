package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/tattvam/config"
	"github.com/shashiranjanraj/tattvam/pkg/response"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check handles GET /health.
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
		"env":    config.AppEnv(),
	})
}
