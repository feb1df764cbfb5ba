package models

import "time"

// Service is a training offering on the public catalog. Price and
// duration are optional: a nil price reads as "Free", a nil duration as
// "Flexible".
type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           *float64  `json:"price,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ServiceStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
	Free        int `json:"free"`
}
