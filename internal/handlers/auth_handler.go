package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-admin/internal/auth"
	"product-admin/internal/metrics"
)

// AuthHandler exchanges the admin password for the shared admin token.
type AuthHandler struct {
	password string
	token    string
}

func NewAuthHandler(password, token string) *AuthHandler {
	return &AuthHandler{password: password, token: token}
}

type loginRequest struct {
	Password *string `json:"password"`
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == nil || *req.Password == "" {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		fail(c, http.StatusBadRequest, "Password is required")
		return
	}
	if !auth.CheckPassword(h.password, *req.Password) {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		fail(c, http.StatusUnauthorized, "Invalid password")
		return
	}
	metrics.LoginAttempts.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": h.token})
}
