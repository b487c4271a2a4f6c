package repository

import (
	"context"
	"errors"

	"product-admin/internal/models"
)

// ErrNotFound is returned when no product matches the identifier, including
// identifiers the store cannot parse.
var ErrNotFound = errors.New("product not found")

//go:generate mockgen -destination=mocks/store_mock.go -package=mocks product-admin/internal/repository ProductStore

// ProductStore is the persistence capability the handlers depend on.
type ProductStore interface {
	// ListAll returns every product, newest first.
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// Insert assigns ID and CreatedAt on p before persisting it.
	Insert(ctx context.Context, p *models.Product) error
	// UpdateByID applies the non-nil fields of u and returns the stored result.
	UpdateByID(ctx context.Context, id string, u models.ProductUpdate) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) error
}

var (
	_ ProductStore = (*ProductRepository)(nil)
	_ ProductStore = (*MemoryStore)(nil)
)
