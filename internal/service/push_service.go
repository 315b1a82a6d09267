package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	config "github.com/adchartview/tips-api/configs"
)

const oneSignalNotificationsURL = "https://onesignal.com/api/v1/notifications"

// PushService delivers one batched push per publish event through OneSignal.
type PushService interface {
	SendBatch(ctx context.Context, playerIDs []string, title, body, url string) error
}

type pushService struct {
	cfg    config.Config
	client *http.Client
}

func NewPushService(cfg config.Config) PushService {
	return &pushService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type oneSignalNotification struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	URL              string            `json:"url,omitempty"`
}

func (s *pushService) SendBatch(ctx context.Context, playerIDs []string, title, body, url string) error {
	payload, err := json.Marshal(oneSignalNotification{
		AppID:            s.cfg.OneSignal.AppID,
		IncludePlayerIDs: playerIDs,
		Headings:         map[string]string{"en": title},
		Contents:         map[string]string{"en": body},
		URL:              url,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oneSignalNotificationsURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+s.cfg.OneSignal.RestAPIKey)

	response, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(response.Body)
		return fmt.Errorf("unexpected response status: %d: %s", response.StatusCode, string(respBody))
	}

	return nil
}
