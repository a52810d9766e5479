package auth

import (
	"errors"
	"net/http"

	"cricverse/internal/shared/middleware"
	"cricverse/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// Register handles POST /api/v1/auth/register
func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.RespondJSON(ctx, "error", http.StatusConflict, "Email already registered", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Registration failed", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Account created", result, nil)
}

// Login handles POST /api/v1/auth/login
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid email or password", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Login failed", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Logged in", result, nil)
}

// RefreshToken handles POST /api/v1/auth/refresh
func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid refresh token", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Token refreshed", tokenPair, nil)
}

// ChangePassword handles PUT /api/v1/auth/change-password
func (c *Controller) ChangePassword(ctx *gin.Context) {
	customerID, ok := middleware.CustomerID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	if err := c.service.ChangePassword(ctx.Request.Context(), customerID.String(), &req); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Current password is incorrect", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Password change failed", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Password changed", nil, nil)
}
