package domain

import "time"

// Item is a sale item. Stock here is the authoritative count as last read
// from the database; cached copies may lag behind and are advisory only.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}
