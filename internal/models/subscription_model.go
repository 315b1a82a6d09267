package models

import "time"

// SubscriptionEntry is one purchased plan for a user. Entries are append-only:
// expiry is decided at read time by comparing ExpiresAt against the clock,
// IsActive allows manual deactivation before natural expiry.
type SubscriptionEntry struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Category  string    `db:"plan_category" json:"plan_category"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
