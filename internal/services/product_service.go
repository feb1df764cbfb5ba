package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
)

type productStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
}

type ProductService struct {
	store productStore
}

func NewProductService(store productStore) *ProductService {
	return &ProductService{store: store}
}

type ProductInput struct {
	Name                string
	Category            string
	Price               float64
	OriginalPrice       *float64
	Platform            string
	URL                 string
	Rating              float64
	RecommendationScore int
	Status              string
}

func (s *ProductService) build(input ProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price < 0 {
		return nil, ErrInvalidInput
	}
	if !utils.IsValidStatus("product", input.Status) {
		return nil, ErrInvalidStatus
	}
	return &models.Product{
		Name:                strings.TrimSpace(input.Name),
		Category:            input.Category,
		Price:               input.Price,
		OriginalPrice:       input.OriginalPrice,
		Platform:            input.Platform,
		URL:                 input.URL,
		Rating:              input.Rating,
		RecommendationScore: input.RecommendationScore,
		Status:              input.Status,
	}, nil
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	product, err := s.build(input)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, input ProductInput) (*models.Product, error) {
	product, err := s.build(input)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := s.store.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

type ProductFilter struct {
	Search   string
	Status   string
	Category string
}

func (s *ProductService) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if !MatchesQuery(filter.Search, product.Name, product.Category, product.Platform) {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *ProductService) Stats(ctx context.Context) (*models.ProductStats, error) {
	products, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.ProductStats{Total: len(products)}
	var ratingSum, priceSum float64
	for _, product := range products {
		switch product.Status {
		case "active":
			stats.Active++
		case "inactive":
			stats.Inactive++
		case "discontinued":
			stats.Discontinued++
		}
		ratingSum += product.Rating
		priceSum += product.Price
	}
	if len(products) > 0 {
		stats.AverageRating = ratingSum / float64(len(products))
		stats.AveragePrice = priceSum / float64(len(products))
	}
	return stats, nil
}

// ImportFromURL fills a product draft from a listing URL. There is no
// real scraper behind this: known platforms get canned catalog data
// keyed off the host, everything else gets a bare draft.
func (s *ProductService) ImportFromURL(rawURL string) (*ProductInput, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return nil, ErrInvalidInput
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	draft := mockCatalog[host]
	if draft == nil {
		draft = &ProductInput{
			Name:     "Imported product",
			Category: "uncategorized",
			Platform: host,
			Rating:   0,
			Status:   "inactive",
		}
	}

	out := *draft
	out.URL = rawURL
	return &out, nil
}

var mockCatalog = map[string]*ProductInput{
	"amazon.com": {
		Name:                "Adjustable Dumbbell Set 40kg",
		Category:            "equipment",
		Price:               189.99,
		OriginalPrice:       floatPtr(249.99),
		Platform:            "amazon.com",
		Rating:              4.6,
		RecommendationScore: 88,
		Status:              "active",
	},
	"flipkart.com": {
		Name:                "Resistance Band Pack (5 levels)",
		Category:            "accessories",
		Price:               24.99,
		OriginalPrice:       floatPtr(34.99),
		Platform:            "flipkart.com",
		Rating:              4.3,
		RecommendationScore: 74,
		Status:              "active",
	},
	"myprotein.com": {
		Name:                "Impact Whey Protein 2.5kg",
		Category:            "supplements",
		Price:               54.99,
		Platform:            "myprotein.com",
		Rating:              4.5,
		RecommendationScore: 81,
		Status:              "active",
	},
}

func floatPtr(v float64) *float64 { return &v }
