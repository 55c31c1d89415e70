package usecase

import (
	"context"
	"regexp"
	"strings"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// CatalogUseCase serves products and categories.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// ListProducts searches the catalog.
func (u *CatalogUseCase) ListProducts(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domainErrors.ErrValidation
	}
	return u.products.List(ctx, filter.Normalize())
}

// GetProduct returns a single product.
func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// CreateProduct adds a product to the catalog.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if err := validateProduct(&p); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, p)
}

// UpdateProduct replaces the editable fields of a product.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if p.ID == "" {
		return nil, domainErrors.ErrValidation
	}
	if err := validateProduct(&p); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, p)
}

// DeleteProduct removes a product.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}

// ListCategories returns all categories ordered by name.
func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// CreateCategory adds a category, deriving the slug from the name when empty.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	if err := validateCategory(&c); err != nil {
		return nil, err
	}
	return u.categories.Create(ctx, c)
}

// UpdateCategory renames a category.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	if c.ID == "" {
		return nil, domainErrors.ErrValidation
	}
	if err := validateCategory(&c); err != nil {
		return nil, err
	}
	return u.categories.Update(ctx, c)
}

// DeleteCategory removes an unused category.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	return u.categories.Delete(ctx, id)
}

func validateProduct(p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || !p.Price.IsPositive() || p.Stock < 0 {
		return domainErrors.ErrValidation
	}
	if p.CategoryID != nil && strings.TrimSpace(*p.CategoryID) == "" {
		p.CategoryID = nil
	}
	return nil
}

func validateCategory(c *model.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domainErrors.ErrValidation
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if c.Slug == "" {
		return domainErrors.ErrValidation
	}
	return nil
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	return strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
