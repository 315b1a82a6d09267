package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/adchartview/tips-api/internal/repository"
)

// OtpCleanupJob sweeps expired OTP rows. Postgres has no TTL index, so the
// five-minute validity window is enforced by this periodic delete plus the
// expiry check on the verify path.
type OtpCleanupJob struct {
	or repository.OtpRepository
}

func NewOtpCleanupJob(or repository.OtpRepository) *OtpCleanupJob {
	return &OtpCleanupJob{or: or}
}

func (c *OtpCleanupJob) CleanupExpired() {
	ctx := context.Background()

	deleted, err := c.or.DeleteExpired(ctx, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return
	}

	if deleted > 0 {
		slog.Info("expired otps removed", "count", deleted)
	}
}
