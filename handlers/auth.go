package handlers

import (
	"context"
	"net/http"

	"klinik/middleware"
	"klinik/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthAPI is the part of the clinic API that issues tokens.
type AuthAPI interface {
	LoginPatient(ctx context.Context, username, password string) (string, error)
	LoginAdmin(ctx context.Context, username, password string) (string, error)
	RegisterPatient(ctx context.Context, req models.RegisterRequest) (string, error)
}

// AuthHandler relays login and registration to the clinic API. The gateway
// issues no tokens of its own.
type AuthHandler struct {
	API    AuthAPI
	Logger *zap.Logger
}

func NewAuthHandler(api AuthAPI, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{API: api, Logger: logger}
}

// Login authenticates a patient.
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, models.RolePatient, h.API.LoginPatient)
}

// AdminLogin authenticates clinic staff.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, models.RoleAdmin, h.API.LoginAdmin)
}

func (h *AuthHandler) login(c *gin.Context, role string, login func(ctx context.Context, username, password string) (string, error)) {
	logger := getLogger(h.Logger, c)
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	token, err := login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, logger, "Login", err)
		return
	}
	logger.Info("Login succeeded", zap.String("username", req.Username), zap.String("role", role))
	c.JSON(http.StatusOK, models.LoginResponse{Token: token, Role: role})
}

// Register creates a patient account.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := getLogger(h.Logger, c)
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.API.RegisterPatient(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Registration", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// Me returns the caller's identity.
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}
	c.JSON(http.StatusOK, id)
}
