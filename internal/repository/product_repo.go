package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, category, price, original_price, platform, url, rating, recommendation_score, status, created_at, updated_at`

func scanProduct(row pgx.Row, product *models.Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.OriginalPrice,
		&product.Platform,
		&product.URL,
		&product.Rating,
		&product.RecommendationScore,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, category, price, original_price, platform, url, rating, recommendation_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		product.Name,
		product.Category,
		product.Price,
		product.OriginalPrice,
		product.Platform,
		product.URL,
		product.Rating,
		product.RecommendationScore,
		product.Status,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err := scanProduct(rows, &product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	var product models.Product
	if err := scanProduct(r.db.QueryRow(ctx, query, id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, original_price = $5, platform = $6, url = $7,
		    rating = $8, recommendation_score = $9, status = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.OriginalPrice,
		product.Platform,
		product.URL,
		product.Rating,
		product.RecommendationScore,
		product.Status,
	).Scan(&product.UpdatedAt)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
