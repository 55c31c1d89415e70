package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products in the catalog.
type Category struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}

// Product is a sellable catalog entry. Stock never goes negative for checked-out carts.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductSort selects the catalog ordering.
type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	Query      string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       ProductSort
	Page       int
	Limit      int
}

// Normalize clamps pagination values and defaults the ordering.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	switch f.Sort {
	case SortPriceAsc, SortPriceDesc, SortNewest:
	default:
		f.Sort = SortNewest
	}
	return f
}

// Offset returns the row offset for the current page.
func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ProductPage is a single page of catalog results.
type ProductPage struct {
	Items []Product
	Total int
	Page  int
	Limit int
}
