package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/lensline/eyewear-api/internal/models"
)

// productColumns is the full insertable column set, i.e. everything except
// the server-assigned id and timestamps.
const productColumns = `name, price, original_price, discount, category, brand, material,
        shape, color, size, sizes, framecolor, style, rim, gender, type, lenstypes,
        image, gallery, colorimages, description, features, specifications,
        status, featured, bestseller`

const productValues = `:name, :price, :original_price, :discount, :category, :brand, :material,
        :shape, :color, :size, :sizes, :framecolor, :style, :rim, :gender, :type, :lenstypes,
        :image, :gallery, :colorimages, :description, :features, :specifications,
        :status, :featured, :bestseller`

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns the full catalog, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	const q = `SELECT * FROM products ORDER BY created_at DESC`
	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id, or sql.ErrNoRows.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// Search returns products whose name, category or brand contains the query,
// case-insensitively, newest first.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE name ILIKE '%' || $1 || '%'
           OR category ILIKE '%' || $1 || '%'
           OR brand ILIKE '%' || $1 || '%'
        ORDER BY created_at DESC`
	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q, query); err != nil {
		return nil, err
	}
	return products, nil
}

// ByCategory returns products whose category contains the given value,
// case-insensitively, newest first.
func (r *ProductRepository) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE category ILIKE '%' || $1 || '%'
        ORDER BY created_at DESC`
	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q, category); err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a product with every provided field and returns the stored
// row including the generated id and timestamps.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	q := `INSERT INTO products (` + productColumns + `) VALUES (` + productValues + `) RETURNING *`

	sanitize(p)
	rows, err := r.db.NamedQueryContext(ctx, q, p)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	var out models.Product
	if err := rows.StructScan(&out); err != nil {
		return nil, err
	}
	return &out, rows.Err()
}

// Update overwrites every field of the row, refreshing updated_at. This is a
// full-row replace: fields absent from p are written as their zero values,
// never preserved. Returns sql.ErrNoRows when no row has the id.
func (r *ProductRepository) Update(ctx context.Context, id int, p *models.Product) (*models.Product, error) {
	const q = `
        UPDATE products SET
            name = :name, price = :price, original_price = :original_price,
            discount = :discount, category = :category, brand = :brand,
            material = :material, shape = :shape, color = :color, size = :size,
            sizes = :sizes, framecolor = :framecolor, style = :style, rim = :rim,
            gender = :gender, type = :type, lenstypes = :lenstypes,
            image = :image, gallery = :gallery, colorimages = :colorimages,
            description = :description, features = :features,
            specifications = :specifications, status = :status,
            featured = :featured, bestseller = :bestseller,
            updated_at = NOW()
        WHERE id = :id
        RETURNING *`

	sanitize(p)
	p.ID = id
	rows, err := r.db.NamedQueryContext(ctx, q, p)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	var out models.Product
	if err := rows.StructScan(&out); err != nil {
		return nil, err
	}
	return &out, rows.Err()
}

// Delete verifies the row exists, removes it and returns its last snapshot.
// Returns sql.ErrNoRows when no row has the id.
func (r *ProductRepository) Delete(ctx context.Context, id int) (*models.Product, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	const q = `DELETE FROM products WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return nil, err
	}
	return existing, nil
}

// sanitize replaces nil collections and empty enumerations with their stored
// defaults so NOT NULL columns always receive a value.
func sanitize(p *models.Product) {
	if p.Sizes == nil {
		p.Sizes = pq.StringArray{}
	}
	if p.LensTypes == nil {
		p.LensTypes = pq.StringArray{}
	}
	if p.Gallery == nil {
		p.Gallery = pq.StringArray{}
	}
	if p.Features == nil {
		p.Features = pq.StringArray{}
	}
	if len(p.ColorImages) == 0 {
		p.ColorImages = types.JSONText(`{}`)
	}
	if p.Status == "" {
		p.Status = models.ProductStatusActive
	}
}
