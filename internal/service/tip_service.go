package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/repository"
	"github.com/adchartview/tips-api/internal/transfer"
	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type TipService interface {
	List(ctx context.Context, userID int64) ([]*models.Tip, error)
	Create(ctx context.Context, userID int64, tc *transfer.TipCreation, chart *multipart.FileHeader) (*models.Tip, error)
	Update(ctx context.Context, userID int64, tu *transfer.TipUpdate) (*models.Tip, error)
	Remove(ctx context.Context, userID, tipID int64) error
}

type tipService struct {
	ur       repository.UserRepository
	tr       repository.TipRepository
	ent      EntitlementService
	notifier NotifierService
	r2       *R2Service
}

func NewTipService(
	ur repository.UserRepository,
	tr repository.TipRepository,
	ent EntitlementService,
	notifier NotifierService,
	r2 *R2Service) TipService {
	return &tipService{
		ur:       ur,
		tr:       tr,
		ent:      ent,
		notifier: notifier,
		r2:       r2,
	}
}

// List applies the entitlement rules: admins see every tip, users with
// active plans see those categories plus demo tips, everyone else sees demo
// tips only.
func (s *tipService) List(ctx context.Context, userID int64) ([]*models.Tip, error) {
	user, isExist, err := s.ur.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if user.IsAdmin() {
		return s.tr.ListAll(ctx)
	}

	categories, err := s.ent.ActiveCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return s.tr.ListDemo(ctx)
	}

	return s.tr.ListByCategories(ctx, categories)
}

func (s *tipService) Create(ctx context.Context, userID int64, tc *transfer.TipCreation, chart *multipart.FileHeader) (*models.Tip, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	if err := validate.Struct(tc); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !models.IsValidCategory(tc.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, tc.Category)
	}

	var chartKey string
	if chart != nil {
		key, err := s.uploadChart(ctx, chart)
		if err != nil {
			return nil, err
		}
		chartKey = key
	}

	tip := &models.Tip{
		Category:    tc.Category,
		StockName:   tc.StockName,
		Action:      tc.Action,
		EntryPrice:  tc.EntryPrice,
		TargetPrice: tc.TargetPrice,
		StopLoss:    tc.StopLoss,
		Timeframe:   tc.Timeframe,
		Confidence:  tc.Confidence,
		Note:        tc.Note,
		IsDemo:      tc.IsDemo,
		ChartKey:    chartKey,
		CreatedBy:   userID,
	}

	tipID, err := s.tr.Create(ctx, tip)
	if err != nil {
		return nil, err
	}
	tip.ID = tipID

	// Best-effort fan-out. The tip is already stored, so a notification
	// failure never bubbles up to the creator.
	if err := s.notifier.NotifyNewTip(ctx, tip); err != nil {
		slog.Error("tip fan-out failed", "tip_id", tipID, "err", err)
	}

	return tip, nil
}

func (s *tipService) Update(ctx context.Context, userID int64, tu *transfer.TipUpdate) (*models.Tip, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	if err := validate.Struct(tu); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !models.IsValidCategory(tu.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, tu.Category)
	}

	tip := &models.Tip{
		ID:          tu.ID,
		Category:    tu.Category,
		StockName:   tu.StockName,
		Action:      tu.Action,
		EntryPrice:  tu.EntryPrice,
		TargetPrice: tu.TargetPrice,
		StopLoss:    tu.StopLoss,
		Timeframe:   tu.Timeframe,
		Confidence:  tu.Confidence,
		Note:        tu.Note,
		IsDemo:      tu.IsDemo,
	}

	updated, err := s.tr.Update(ctx, tip)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: tip %d", ErrNotFound, tu.ID)
	}

	return tip, nil
}

func (s *tipService) Remove(ctx context.Context, userID, tipID int64) error {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return err
	}

	removed, err := s.tr.Remove(ctx, tipID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: tip %d", ErrNotFound, tipID)
	}
	return nil
}

func (s *tipService) requireAdmin(ctx context.Context, userID int64) error {
	user, isExist, err := s.ur.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !isExist {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	if !user.IsAdmin() {
		return fmt.Errorf("%w: only admins can manage tips", ErrNotAuthorized)
	}
	return nil
}

func (s *tipService) uploadChart(ctx context.Context, chart *multipart.FileHeader) (string, error) {
	file, err := chart.Open()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return "", fmt.Errorf("%w: chart must be an image", ErrValidation)
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("charts/%s.%s", id, kind.Extension)

	if err := s.r2.UploadToR2(ctx, key, data, kind.MIME.Value); err != nil {
		return "", err
	}

	return key, nil
}
