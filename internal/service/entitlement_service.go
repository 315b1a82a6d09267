package service

import (
	"context"
	"time"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/repository"
)

// EntitlementService decides which plan categories a user currently holds.
// An entry counts iff it is still active and its expiry lies in the future;
// a manually deactivated entry grants nothing even before it expires.
type EntitlementService interface {
	ActiveEntries(ctx context.Context, userID int64) ([]*models.SubscriptionEntry, error)
	ActiveCategories(ctx context.Context, userID int64) ([]string, error)
}

type entitlementService struct {
	sr repository.SubscriptionRepository
}

func NewEntitlementService(sr repository.SubscriptionRepository) EntitlementService {
	return &entitlementService{sr: sr}
}

func (s *entitlementService) ActiveEntries(ctx context.Context, userID int64) ([]*models.SubscriptionEntry, error) {
	entries, err := s.sr.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return filterActive(entries, time.Now()), nil
}

func (s *entitlementService) ActiveCategories(ctx context.Context, userID int64) ([]string, error) {
	entries, err := s.ActiveEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	var categories []string
	for _, entry := range entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}
	return categories, nil
}

func filterActive(entries []*models.SubscriptionEntry, now time.Time) []*models.SubscriptionEntry {
	var active []*models.SubscriptionEntry
	for _, entry := range entries {
		if entry.IsActive && entry.ExpiresAt.After(now) {
			active = append(active, entry)
		}
	}
	return active
}
