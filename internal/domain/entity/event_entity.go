package entity

import "time"

// Event is a dated campus happening. Date and Time are kept as the
// client-supplied strings ("2006-01-02", "15:04") so reads echo back exactly
// what was created. CategoryName is denormalized onto joined reads.
type Event struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Place        string    `json:"place"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
