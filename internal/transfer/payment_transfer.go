package transfer

type PaymentVerification struct {
	OrderRef   string  `json:"razorpay_order_id" validate:"required"`
	PaymentRef string  `json:"razorpay_payment_id" validate:"required"`
	Signature  string  `json:"razorpay_signature" validate:"required"`
	PlanID     int64   `json:"plan_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required"`
}
