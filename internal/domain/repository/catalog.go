package repository

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// ProductRepository manages catalog products.
type ProductRepository interface {
	List(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository manages product categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category model.Category) (*model.Category, error)
	Update(ctx context.Context, category model.Category) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}
