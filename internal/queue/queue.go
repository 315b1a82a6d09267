package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// EnqueueOtpSMS hands the SMS off to the worker. MaxRetry is zero on
// purpose: a superseded code must never be re-sent later.
func EnqueueOtpSMS(asynqClient *asynq.Client, payload OtpSMSPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeOtpSMS, taskPayload, asynq.MaxRetry(0))

	_, err = asynqClient.Enqueue(task)
	if err != nil {
		return err
	}

	log.Printf("OTP SMS task scheduled for %s", payload.Phone)
	return nil
}
