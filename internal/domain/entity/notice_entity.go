package entity

import "time"

// Notice is an undated announcement. Same lifecycle as Event minus
// place/date/time; ordered by CreatedAt on reads.
type Notice struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
