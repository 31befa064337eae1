package http

import (
	"net/http"

	"github.com/Lexv0lk/checkout-store/internal/gateway/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type registerRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Missing login fields are not rejected here, so every bad login answers 401 alike.
type loginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	service domain.AuthService
	logger  logging.Logger
}

func NewAuthHandler(service domain.AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := h.service.Register(c.Request.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		handleGRPCError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		handleGRPCError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
