package queue

import (
	"github.com/adchartview/tips-api/internal/service"
)

type Queue struct {
	sms service.SMSService
}

func NewQueue(sms service.SMSService) *Queue {
	return &Queue{
		sms: sms,
	}
}

const TaskTypeOtpSMS = "otp:sms"

type OtpSMSPayload struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}
