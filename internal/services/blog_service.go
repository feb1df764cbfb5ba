package services

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	"github.com/jackc/pgx/v5"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

type blogStore interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetAll(ctx context.Context) ([]models.BlogPost, error)
	GetPublished(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id int64) error
}

// renderer escapes raw HTML in post content (WithUnsafe is NOT set),
// so stored markdown cannot inject script into the public site.
var renderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type BlogService struct {
	store blogStore
}

func NewBlogService(store blogStore) *BlogService {
	return &BlogService{store: store}
}

type BlogPostInput struct {
	Title    string
	Slug     string
	Content  string
	Excerpt  string
	Status   string
	Tags     []string
	AuthorID *int64
}

func (s *BlogService) buildPost(input BlogPostInput) (*models.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	if !utils.IsValidStatus("content", input.Status) {
		return nil, ErrInvalidStatus
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = title
	}
	slug = utils.GenerateSlug(slug)

	excerpt := strings.TrimSpace(input.Excerpt)
	if excerpt == "" {
		excerpt = utils.Truncate(input.Content, 160)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	return &models.BlogPost{
		Title:    title,
		Slug:     slug,
		Content:  input.Content,
		Excerpt:  excerpt,
		Status:   input.Status,
		Tags:     tags,
		AuthorID: input.AuthorID,
	}, nil
}

func (s *BlogService) Create(ctx context.Context, input BlogPostInput) (*models.BlogPost, error) {
	post, err := s.buildPost(input)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Update(ctx context.Context, id int64, input BlogPostInput) (*models.BlogPost, error) {
	post, err := s.buildPost(input)
	if err != nil {
		return nil, err
	}
	post.ID = id
	if err := s.store.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

type BlogFilter struct {
	Search string
	Status string
}

func (s *BlogService) List(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error) {
	posts, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if filter.Status != "" && post.Status != filter.Status {
			continue
		}
		if !MatchesQuery(filter.Search, post.Title, post.Excerpt, post.Content, strings.Join(post.Tags, " ")) {
			continue
		}
		filtered = append(filtered, post)
	}
	return filtered, nil
}

func (s *BlogService) Get(ctx context.Context, id int64) (*models.BlogPost, error) {
	return s.store.GetByID(ctx, id)
}

func (s *BlogService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// PublicList returns published posts only.
func (s *BlogService) PublicList(ctx context.Context) ([]models.BlogPost, error) {
	return s.store.GetPublished(ctx)
}

// PublicGet resolves a published post by slug and renders its
// markdown content to HTML.
func (s *BlogService) PublicGet(ctx context.Context, slug string) (*models.BlogPostDetail, error) {
	post, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Status != "published" {
		// Unpublished posts are invisible on the public site.
		return nil, pgx.ErrNoRows
	}

	var buf bytes.Buffer
	if err := renderer.Convert([]byte(post.Content), &buf); err != nil {
		return nil, err
	}
	return &models.BlogPostDetail{BlogPost: *post, ContentHTML: buf.String()}, nil
}

func (s *BlogService) Stats(ctx context.Context) (*models.BlogStats, error) {
	posts, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &models.BlogStats{Total: len(posts)}
	for _, post := range posts {
		switch post.Status {
		case "published":
			stats.Published++
		case "draft":
			stats.Drafts++
		case "archived":
			stats.Archived++
		}
		if WithinLastWeek(post.CreatedAt, now) {
			stats.ThisWeek++
		}
	}
	return stats, nil
}
