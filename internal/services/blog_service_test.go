package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type stubBlogStore struct {
	created   []*models.BlogPost
	all       []models.BlogPost
	published []models.BlogPost
	bySlug    map[string]*models.BlogPost
}

func (s *stubBlogStore) Create(_ context.Context, post *models.BlogPost) error {
	post.ID = int64(len(s.created) + 1)
	s.created = append(s.created, post)
	return nil
}

func (s *stubBlogStore) GetAll(_ context.Context) ([]models.BlogPost, error) {
	return s.all, nil
}

func (s *stubBlogStore) GetPublished(_ context.Context) ([]models.BlogPost, error) {
	return s.published, nil
}

func (s *stubBlogStore) GetByID(_ context.Context, _ int64) (*models.BlogPost, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubBlogStore) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	post, ok := s.bySlug[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return post, nil
}

func (s *stubBlogStore) Update(_ context.Context, _ *models.BlogPost) error { return nil }
func (s *stubBlogStore) Delete(_ context.Context, _ int64) error            { return nil }

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	store := &stubBlogStore{}
	service := NewBlogService(store)

	post, err := service.Create(context.Background(), BlogPostInput{
		Title:   "Hello, World!  2024",
		Content: "Body text.",
		Status:  "draft",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Slug != "hello-world-2024" {
		t.Fatalf("slug = %q, want hello-world-2024", post.Slug)
	}
}

func TestCreateKeepsExplicitSlugAndExcerpt(t *testing.T) {
	service := NewBlogService(&stubBlogStore{})

	post, err := service.Create(context.Background(), BlogPostInput{
		Title:   "A Title",
		Slug:    "custom-slug",
		Content: "Body",
		Excerpt: "Hand-written excerpt",
		Status:  "published",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Slug != "custom-slug" {
		t.Fatalf("slug = %q, want custom-slug", post.Slug)
	}
	if post.Excerpt != "Hand-written excerpt" {
		t.Fatalf("excerpt = %q", post.Excerpt)
	}
}

func TestCreateDerivesExcerptFromContent(t *testing.T) {
	service := NewBlogService(&stubBlogStore{})

	long := strings.Repeat("word ", 100)
	post, err := service.Create(context.Background(), BlogPostInput{
		Title:   "Long Post",
		Content: long,
		Status:  "draft",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasSuffix(post.Excerpt, "...") {
		t.Fatalf("expected truncated excerpt, got %q", post.Excerpt)
	}
	if len([]rune(post.Excerpt)) > 163 {
		t.Fatalf("excerpt too long: %d runes", len([]rune(post.Excerpt)))
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	service := NewBlogService(&stubBlogStore{})

	if _, err := service.Create(context.Background(), BlogPostInput{Status: "draft"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing title: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Create(context.Background(), BlogPostInput{Title: "T", Status: "live"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("bad status: expected ErrInvalidStatus, got %v", err)
	}
}

func TestPublicGetRendersMarkdownAndEscapesHTML(t *testing.T) {
	store := &stubBlogStore{bySlug: map[string]*models.BlogPost{
		"my-post": {
			ID:      1,
			Title:   "My Post",
			Slug:    "my-post",
			Content: "# Heading\n\n<script>alert(1)</script>",
			Status:  "published",
		},
	}}
	service := NewBlogService(store)

	detail, err := service.PublicGet(context.Background(), "my-post")
	if err != nil {
		t.Fatalf("PublicGet: %v", err)
	}
	if !strings.Contains(detail.ContentHTML, "<h1>Heading</h1>") {
		t.Fatalf("expected rendered heading, got %q", detail.ContentHTML)
	}
	if strings.Contains(detail.ContentHTML, "<script>") {
		t.Fatalf("raw HTML must be escaped, got %q", detail.ContentHTML)
	}
}

func TestPublicGetHidesUnpublishedPosts(t *testing.T) {
	store := &stubBlogStore{bySlug: map[string]*models.BlogPost{
		"draft-post": {ID: 2, Slug: "draft-post", Status: "draft"},
	}}
	service := NewBlogService(store)

	if _, err := service.PublicGet(context.Background(), "draft-post"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows for draft post, got %v", err)
	}
}

func TestBlogListFiltersBySearchAndStatus(t *testing.T) {
	store := &stubBlogStore{all: []models.BlogPost{
		{ID: 1, Title: "Protein Basics", Status: "published", Tags: []string{"nutrition"}},
		{ID: 2, Title: "Sleep Hygiene", Status: "draft"},
		{ID: 3, Title: "Another Post", Content: "all about protein timing", Status: "published"},
	}}
	service := NewBlogService(store)

	got, err := service.List(context.Background(), BlogFilter{Search: "protein", Status: "published"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	byTag, err := service.List(context.Background(), BlogFilter{Search: "nutrition"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byTag) != 1 || byTag[0].ID != 1 {
		t.Fatalf("expected tag match on post 1, got %+v", byTag)
	}
}
