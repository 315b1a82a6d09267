package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

func (j *Queue) HandleOtpSMSTask(ctx context.Context, task *asynq.Task) error {
	var payload OtpSMSPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	// Delivery is best effort; a provider failure is logged and dropped so
	// the task is never retried with a stale code.
	if err := j.sms.SendOtp(ctx, payload.Phone, payload.Code); err != nil {
		slog.Error("otp sms delivery failed", "phone", payload.Phone, "err", err)
	}

	return nil
}
