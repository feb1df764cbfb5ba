package models

import "time"

type BlogPost struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Status    string    `json:"status"`
	Tags      []string  `json:"tags"`
	AuthorID  *int64    `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPostDetail is the public view of a published post, with the
// markdown content rendered to HTML.
type BlogPostDetail struct {
	BlogPost
	ContentHTML string `json:"content_html"`
}

type BlogStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
	Archived  int `json:"archived"`
	ThisWeek  int `json:"this_week"`
}
