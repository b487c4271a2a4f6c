package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-admin/internal/logger"
	"product-admin/internal/repository"
)

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

// storeFailure maps a store error to 404 or a generic 500. Driver details are
// logged, never returned.
func storeFailure(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}
	logger.Errorf("%s: %v", op, err)
	fail(c, http.StatusInternalServerError, "Internal server error")
}
