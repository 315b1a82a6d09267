package models

import "time"

type Payment struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	PlanID     int64     `db:"plan_id" json:"plan_id"`
	OrderRef   string    `db:"order_ref" json:"order_ref"`
	PaymentRef string    `db:"payment_ref" json:"payment_ref"`
	Amount     float64   `db:"amount" json:"amount"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
