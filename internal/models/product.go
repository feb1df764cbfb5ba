package models

import "time"

type Product struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Price               float64   `json:"price"`
	OriginalPrice       *float64  `json:"original_price,omitempty"`
	Platform            string    `json:"platform"`
	URL                 string    `json:"url"`
	Rating              float64   `json:"rating"`
	RecommendationScore int       `json:"recommendation_score"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ProductStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Inactive      int     `json:"inactive"`
	Discontinued  int     `json:"discontinued"`
	AverageRating float64 `json:"average_rating"`
	AveragePrice  float64 `json:"average_price"`
}
