package transfer

type OtpSend struct {
	Phone string `json:"phone" validate:"required"`
}

type OtpVerification struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}
