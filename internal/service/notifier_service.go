package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/repository"

	config "github.com/adchartview/tips-api/configs"
)

// NotifierService fans a freshly published tip out to every user entitled to
// its category: one persisted notification row per recipient, then a single
// batched push call for the recipients that registered a push endpoint.
// The push attempt is best effort; its failure is logged and swallowed.
type NotifierService interface {
	NotifyNewTip(ctx context.Context, tip *models.Tip) error
}

type notifierService struct {
	cfg  config.Config
	sr   repository.SubscriptionRepository
	nr   repository.NotificationRepository
	push PushService
}

func NewNotifierService(cfg config.Config, sr repository.SubscriptionRepository, nr repository.NotificationRepository, push PushService) NotifierService {
	return &notifierService{
		cfg:  cfg,
		sr:   sr,
		nr:   nr,
		push: push,
	}
}

func (s *notifierService) NotifyNewTip(ctx context.Context, tip *models.Tip) error {
	recipients, err := s.sr.ListEntitledUsers(ctx, tip.Category, time.Now())
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	message := fmt.Sprintf("New %s tip: %s", tip.Category, tip.StockName)

	userIDs := make([]int64, 0, len(recipients))
	var playerIDs []string
	for _, recipient := range recipients {
		userIDs = append(userIDs, recipient.ID)
		if recipient.OneSignalID.Valid && recipient.OneSignalID.String != "" {
			playerIDs = append(playerIDs, recipient.OneSignalID.String)
		}
	}

	// Rows are written before the push attempt so a delivery failure never
	// loses the in-app notification.
	if err := s.nr.CreateBulk(ctx, userIDs, message); err != nil {
		return err
	}

	if len(playerIDs) > 0 {
		err := s.push.SendBatch(ctx, playerIDs, "AdChartView", message, s.cfg.FrontendURL+"/tips")
		if err != nil {
			slog.Error("push delivery failed", "tip_id", tip.ID, "recipients", len(playerIDs), "err", err)
		}
	}

	return nil
}
