package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-admin/internal/models"
	"product-admin/internal/repository"
)

type ProductHandler struct {
	store repository.ProductStore
}

func NewProductHandler(store repository.ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		storeFailure(c, "list products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFailure(c, "get product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Name == "" {
		fail(c, http.StatusBadRequest, "Name is required")
		return
	}

	product := in.Product()
	if err := h.store.Insert(c.Request.Context(), &product); err != nil {
		storeFailure(c, "create product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// PUT /api/products/:id
//
// Only fields present in the body are overwritten. Name is not re-validated,
// so an update may set it to "".
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil && !errors.Is(err, io.EOF) {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		storeFailure(c, "update product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.store.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		storeFailure(c, "delete product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
