package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type BlogPostRepository struct {
	db DBTX
}

func NewBlogPostRepository(db DBTX) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

const blogPostColumns = `id, title, slug, content, excerpt, status, tags, author_id, created_at, updated_at`

func scanBlogPost(row pgx.Row, post *models.BlogPost) error {
	return row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.Status,
		&post.Tags,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
}

func (r *BlogPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (title, slug, content, excerpt, status, tags, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Status,
		post.Tags,
		post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *BlogPostRepository) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0)
	for rows.Next() {
		var post models.BlogPost
		if err := scanBlogPost(rows, &post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *BlogPostRepository) GetPublished(ctx context.Context) ([]models.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		WHERE status = 'published'
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0)
	for rows.Next() {
		var post models.BlogPost
		if err := scanBlogPost(rows, &post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		WHERE id = $1
	`
	var post models.BlogPost
	if err := scanBlogPost(r.db.QueryRow(ctx, query, id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		WHERE slug = $1
	`
	var post models.BlogPost
	if err := scanBlogPost(r.db.QueryRow(ctx, query, slug), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogPostRepository) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, status = $6, tags = $7, author_id = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Status,
		post.Tags,
		post.AuthorID,
	).Scan(&post.UpdatedAt)
}

func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
