package models

import "time"

const (
	CategoryEquity      = "equity"
	CategoryFnO         = "fno"
	CategoryForexCrypto = "forex_crypto"
)

func IsValidCategory(category string) bool {
	switch category {
	case CategoryEquity, CategoryFnO, CategoryForexCrypto:
		return true
	}
	return false
}

type Tip struct {
	ID          int64     `db:"id" json:"id"`
	Category    string    `db:"category" json:"category"`
	StockName   string    `db:"stock_name" json:"stock_name"`
	Action      string    `db:"action" json:"action"`
	EntryPrice  float64   `db:"entry_price" json:"entry_price"`
	TargetPrice float64   `db:"target_price" json:"target_price"`
	StopLoss    float64   `db:"stop_loss" json:"stop_loss"`
	Timeframe   string    `db:"timeframe" json:"timeframe"`
	Confidence  string    `db:"confidence" json:"confidence"`
	Note        string    `db:"note" json:"note"`
	IsDemo      bool      `db:"is_demo" json:"is_demo"`
	ChartKey    string    `db:"chart_key" json:"chart_key"`
	CreatedBy   int64     `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
