package models

import "time"

type Assessment struct {
	ID        int64     `json:"id"`
	PublicID  string    `json:"public_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Age       int       `json:"age"`
	HeightCM  float64   `json:"height_cm"`
	WeightKG  float64   `json:"weight_kg"`
	Goals     string    `json:"goals"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AssessmentResponse struct {
	ID           int64     `json:"id"`
	AssessmentID int64     `json:"assessment_id"`
	SectionName  string    `json:"section_name"`
	ResponseText string    `json:"response_text"`
	CreatedAt    time.Time `json:"created_at"`
}

type AssessmentDetail struct {
	Assessment
	Responses []AssessmentResponse `json:"responses"`
}

type AssessmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewed  int `json:"reviewed"`
	Contacted int `json:"contacted"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	ThisWeek  int `json:"this_week"`
}
