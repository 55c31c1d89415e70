package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
)

const productColumns = `id, name, description, price, stock, category_id, image_url, created_at, updated_at`

// --- ProductRepository implementation ---

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	filter = filter.Normalize()
	where, args := productWhere(filter)

	countQuery := `SELECT COUNT(*) FROM products` + where
	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM products%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, where, productOrder(filter.Sort), len(args)+1, len(args)+2)
	rows, err := r.storage.pool.Query(ctx, listQuery, append(args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	page := &model.ProductPage{Total: total, Page: filter.Page, Limit: filter.Limit}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

func productWhere(filter model.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func productOrder(sort model.ProductSort) string {
	switch sort {
	case model.SortPriceAsc:
		return "price ASC, id"
	case model.SortPriceDesc:
		return "price DESC, id"
	default:
		return "created_at DESC, id"
	}
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	p, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *productRepository) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (id, name, description, price, stock, category_id, image_url)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.storage.pool.QueryRow(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.ImageURL).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, p model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET name=$2, description=$3, price=$4, stock=$5, category_id=$6, image_url=$7, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.ImageURL).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(notFound(err))
	}
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name, slug, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Create(ctx context.Context, c model.Category) (*model.Category, error) {
	const query = `INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3) RETURNING created_at`
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := r.storage.pool.QueryRow(ctx, query, c.ID, c.Name, c.Slug).Scan(&c.CreatedAt); err != nil {
		return nil, mapWriteError(err)
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, c model.Category) (*model.Category, error) {
	const query = `UPDATE categories SET name=$2, slug=$3 WHERE id=$1 RETURNING created_at`
	if err := r.storage.pool.QueryRow(ctx, query, c.ID, c.Name, c.Slug).Scan(&c.CreatedAt); err != nil {
		return nil, mapWriteError(notFound(err))
	}
	return &c, nil
}

// Delete refuses to remove a category that still has products.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
