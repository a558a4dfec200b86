package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/tattvam/app/access"
	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/services"
	"github.com/shashiranjanraj/tattvam/pkg/bind"
	"github.com/shashiranjanraj/tattvam/pkg/response"
)

// TokenResponse is the register/login success payload.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register handles POST /auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Register(in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Created(w, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
}

// Login handles POST /auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
}

// Me handles GET /auth/me.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	user, err := c.service.GetUser(identity.UserID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, user)
}

// UpdateMe handles PUT /auth/me (profile update).
func (c *AuthController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity := access.MustIdentity(r)

	var patch models.UserPatch
	if errs, err := bind.JSON(r, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.UpdateProfile(identity.UserID, patch)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, user)
}
