package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type FAQRepository struct {
	db DBTX
}

func NewFAQRepository(db DBTX) *FAQRepository {
	return &FAQRepository{db: db}
}

const faqColumns = `id, question, answer, category, display_order, is_active, created_at, updated_at`

func scanFAQ(row pgx.Row, faq *models.FAQ) error {
	return row.Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&faq.Category,
		&faq.DisplayOrder,
		&faq.IsActive,
		&faq.CreatedAt,
		&faq.UpdatedAt,
	)
}

func (r *FAQRepository) Create(ctx context.Context, faq *models.FAQ) error {
	query := `
		INSERT INTO faqs (question, answer, category, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.DisplayOrder,
		faq.IsActive,
	).Scan(&faq.ID, &faq.CreatedAt, &faq.UpdatedAt)
}

func (r *FAQRepository) GetAll(ctx context.Context) ([]models.FAQ, error) {
	query := `
		SELECT ` + faqColumns + `
		FROM faqs
		ORDER BY display_order ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := make([]models.FAQ, 0)
	for rows.Next() {
		var faq models.FAQ
		if err := scanFAQ(rows, &faq); err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

// GetActive returns active FAQs, optionally narrowed to one category.
func (r *FAQRepository) GetActive(ctx context.Context, category string) ([]models.FAQ, error) {
	query := `
		SELECT ` + faqColumns + `
		FROM faqs
		WHERE is_active = TRUE
	`
	args := []any{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := make([]models.FAQ, 0)
	for rows.Next() {
		var faq models.FAQ
		if err := scanFAQ(rows, &faq); err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

func (r *FAQRepository) GetByID(ctx context.Context, id int64) (*models.FAQ, error) {
	query := `
		SELECT ` + faqColumns + `
		FROM faqs
		WHERE id = $1
	`
	var faq models.FAQ
	if err := scanFAQ(r.db.QueryRow(ctx, query, id), &faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *FAQRepository) Update(ctx context.Context, faq *models.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, category = $4, display_order = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.DisplayOrder,
		faq.IsActive,
	).Scan(&faq.UpdatedAt)
}

func (r *FAQRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
