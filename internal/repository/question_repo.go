package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type QuestionRepository struct {
	db DBTX
}

func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `id, name, email, question, answer, category, status, created_at, updated_at`

func scanQuestion(row pgx.Row, question *models.UserQuestion) error {
	return row.Scan(
		&question.ID,
		&question.Name,
		&question.Email,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Status,
		&question.CreatedAt,
		&question.UpdatedAt,
	)
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.UserQuestion) error {
	query := `
		INSERT INTO user_questions (name, email, question, category, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		question.Name,
		question.Email,
		question.Question,
		question.Category,
		question.Status,
	).Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt)
}

func (r *QuestionRepository) GetAll(ctx context.Context) ([]models.UserQuestion, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM user_questions
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]models.UserQuestion, 0)
	for rows.Next() {
		var question models.UserQuestion
		if err := scanQuestion(rows, &question); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.UserQuestion, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM user_questions
		WHERE id = $1
	`
	var question models.UserQuestion
	if err := scanQuestion(r.db.QueryRow(ctx, query, id), &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Update(ctx context.Context, question *models.UserQuestion) error {
	query := `
		UPDATE user_questions
		SET name = $2, email = $3, question = $4, answer = $5, category = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		question.ID,
		question.Name,
		question.Email,
		question.Question,
		question.Answer,
		question.Category,
		question.Status,
	).Scan(&question.UpdatedAt)
}

func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
