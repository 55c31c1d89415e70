package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/server/http/dto"
)

// CatalogHandler serves products and categories.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Products handles GET /products.
func (h *CatalogHandler) Products(c *gin.Context) {
	filter, ok := parseProductFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	page, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductPageResponse(*page))
}

func parseProductFilter(c *gin.Context) (model.ProductFilter, bool) {
	filter := model.ProductFilter{
		Query:      c.Query("q"),
		CategoryID: c.Query("category"),
		Sort:       model.ProductSort(c.Query("sort")),
	}
	for name, dst := range map[string]*int{"page": &filter.Page, "limit": &filter.Limit} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, false
		}
		*dst = n
	}
	for name, dst := range map[string]**decimal.Decimal{"min_price": &filter.MinPrice, "max_price": &filter.MaxPrice} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return filter, false
		}
		*dst = &d
	}
	return filter, true
}

// Product handles GET /products/:id.
func (h *CatalogHandler) Product(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(*product))
}

// CreateProduct handles POST /admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	product, err := h.facade.CreateProduct(c.Request.Context(), req.ToModel(""))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(*product))
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	product, err := h.facade.UpdateProduct(c.Request.Context(), req.ToModel(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(*product))
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories handles GET /categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.NewCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCategory handles POST /admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.facade.CreateCategory(c.Request.Context(), model.Category{Name: req.Name, Slug: req.Slug})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(*category))
}

// UpdateCategory handles PUT /admin/categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.facade.UpdateCategory(c.Request.Context(), model.Category{ID: c.Param("id"), Name: req.Name, Slug: req.Slug})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(*category))
}

// DeleteCategory handles DELETE /admin/categories/:id. Categories still holding products yield 409.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.facade.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
