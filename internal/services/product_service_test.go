package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Frajuan18/Gym-sub000/internal/models"
)

type stubProductStore struct {
	all []models.Product
}

func (s *stubProductStore) Create(_ context.Context, product *models.Product) error {
	product.ID = int64(len(s.all) + 1)
	s.all = append(s.all, *product)
	return nil
}

func (s *stubProductStore) GetAll(_ context.Context) ([]models.Product, error) {
	return s.all, nil
}

func (s *stubProductStore) GetByID(_ context.Context, _ int64) (*models.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProductStore) Update(_ context.Context, _ *models.Product) error { return nil }
func (s *stubProductStore) Delete(_ context.Context, _ int64) error           { return nil }

func TestImportFromURLKnownPlatform(t *testing.T) {
	service := NewProductService(&stubProductStore{})

	draft, err := service.ImportFromURL("https://www.amazon.com/dp/B0EXAMPLE")
	if err != nil {
		t.Fatalf("ImportFromURL: %v", err)
	}
	if draft.Platform != "amazon.com" {
		t.Fatalf("platform = %q", draft.Platform)
	}
	if draft.Name != "Adjustable Dumbbell Set 40kg" {
		t.Fatalf("name = %q", draft.Name)
	}
	if draft.Status != "active" {
		t.Fatalf("status = %q", draft.Status)
	}
	if draft.URL != "https://www.amazon.com/dp/B0EXAMPLE" {
		t.Fatalf("expected original url preserved, got %q", draft.URL)
	}
}

func TestImportFromURLUnknownPlatformGetsBareDraft(t *testing.T) {
	service := NewProductService(&stubProductStore{})

	draft, err := service.ImportFromURL("https://shop.example.org/item/7")
	if err != nil {
		t.Fatalf("ImportFromURL: %v", err)
	}
	if draft.Name != "Imported product" {
		t.Fatalf("name = %q", draft.Name)
	}
	if draft.Platform != "shop.example.org" {
		t.Fatalf("platform = %q", draft.Platform)
	}
	if draft.Status != "inactive" {
		t.Fatalf("status = %q", draft.Status)
	}
}

func TestImportFromURLRejectsGarbage(t *testing.T) {
	service := NewProductService(&stubProductStore{})
	for _, raw := range []string{"", "not a url", "/relative/path"} {
		if _, err := service.ImportFromURL(raw); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ImportFromURL(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

func TestImportDoesNotMutateCatalog(t *testing.T) {
	service := NewProductService(&stubProductStore{})

	first, err := service.ImportFromURL("https://myprotein.com/whey")
	if err != nil {
		t.Fatalf("ImportFromURL: %v", err)
	}
	first.Name = "changed"

	second, err := service.ImportFromURL("https://myprotein.com/whey")
	if err != nil {
		t.Fatalf("ImportFromURL: %v", err)
	}
	if second.Name != "Impact Whey Protein 2.5kg" {
		t.Fatalf("catalog entry was mutated: %q", second.Name)
	}
}

func TestProductStatsAverages(t *testing.T) {
	store := &stubProductStore{all: []models.Product{
		{Status: "active", Rating: 4.0, Price: 10},
		{Status: "inactive", Rating: 5.0, Price: 30},
		{Status: "discontinued", Rating: 3.0, Price: 20},
	}}
	service := NewProductService(store)

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Active != 1 || stats.Inactive != 1 || stats.Discontinued != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if math.Abs(stats.AverageRating-4.0) > 1e-9 {
		t.Fatalf("average rating = %v", stats.AverageRating)
	}
	if math.Abs(stats.AveragePrice-20.0) > 1e-9 {
		t.Fatalf("average price = %v", stats.AveragePrice)
	}
}

func TestProductCreateValidates(t *testing.T) {
	service := NewProductService(&stubProductStore{})

	if _, err := service.Create(context.Background(), ProductInput{Status: "active"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Create(context.Background(), ProductInput{Name: "X", Status: "sold_out"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("bad status: expected ErrInvalidStatus, got %v", err)
	}
}
