package models

import "time"

// Plan is a catalog entry. Duration is free-form text ("3 Months", "1 Year"),
// parsed at purchase time to compute the new entry's expiry.
type Plan struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	Duration  string    `db:"duration" json:"duration"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
