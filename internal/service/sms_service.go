package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	config "github.com/adchartview/tips-api/configs"
)

const fast2SMSBulkURL = "https://www.fast2sms.com/dev/bulkV2"

type SMSService interface {
	SendOtp(ctx context.Context, phone, code string) error
}

type smsService struct {
	cfg    config.Config
	client *http.Client
}

func NewSMSService(cfg config.Config) SMSService {
	return &smsService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *smsService) SendOtp(ctx context.Context, phone, code string) error {
	payload, err := json.Marshal(map[string]string{
		"route":     "v3",
		"sender_id": "TXTIND",
		"message":   fmt.Sprintf("Your AdChartView verification code is %s. It expires in 5 minutes.", code),
		"language":  "english",
		"numbers":   phone,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fast2SMSBulkURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authorization", s.cfg.Fast2SMSAPIKey)

	response, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response status: %d", response.StatusCode)
	}

	return nil
}
