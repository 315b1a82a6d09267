package transfer

type TipCreation struct {
	Category    string  `json:"category" form:"category" validate:"required"`
	StockName   string  `json:"stock_name" form:"stock_name" validate:"required"`
	Action      string  `json:"action" form:"action" validate:"required"`
	EntryPrice  float64 `json:"entry_price" form:"entry_price" validate:"required"`
	TargetPrice float64 `json:"target_price" form:"target_price" validate:"required"`
	StopLoss    float64 `json:"stop_loss" form:"stop_loss" validate:"required"`
	Timeframe   string  `json:"timeframe" form:"timeframe" validate:"required"`
	Confidence  string  `json:"confidence" form:"confidence" validate:"required"`
	Note        string  `json:"note" form:"note"`
	IsDemo      bool    `json:"is_demo" form:"is_demo"`
}

type TipUpdate struct {
	ID int64 `json:"id" validate:"required"`
	TipCreation
}
