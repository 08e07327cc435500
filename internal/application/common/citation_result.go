package common

import "time"

type CitationResult struct {
	Id        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Source    string    `json:"source,omitempty"`
	Year      int       `json:"year,omitempty"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
