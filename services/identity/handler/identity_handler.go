package handler

import (
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/identity/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type IdentityServiceInterface interface {
	SignUp(username, email, password string) (model.User, error)
	SignIn(email, password string) (string, error)
}

type IdentityHandler struct {
	service IdentityServiceInterface
}

func NewIdentityHandler(service IdentityServiceInterface) *IdentityHandler {
	return &IdentityHandler{service: service}
}

// SignUpHandler handles POST /signup
func (h *IdentityHandler) SignUpHandler(c *gin.Context) {
	var req helpers.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignUpHandler", err)
		return
	}

	user, err := h.service.SignUp(req.Username, req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "SignUpHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "User created successfully")
	helpers.LogSuccess("SignUpHandler", "user created successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// SignInHandler handles POST /signin
func (h *IdentityHandler) SignInHandler(c *gin.Context) {
	var req helpers.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignInHandler", err)
		return
	}

	token, err := h.service.SignIn(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "SignInHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.SignInResponse{Token: token}, "Signin successful")
	helpers.LogSuccess("SignInHandler", "signin successful", map[string]any{
		"email": req.Email,
	})
}
