package service

import (
	"context"
	"testing"
	"time"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEntitlementService_ActiveCategories_AllExpired(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	repo.On("ListByUserID", mock.Anything, int64(7)).Return([]*models.SubscriptionEntry{
		{UserID: 7, Category: models.CategoryEquity, ExpiresAt: time.Now().Add(-time.Hour), IsActive: true},
		{UserID: 7, Category: models.CategoryFnO, ExpiresAt: time.Now().Add(-24 * time.Hour), IsActive: true},
	}, nil)

	s := NewEntitlementService(repo)
	categories, err := s.ActiveCategories(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, categories)
}

func TestEntitlementService_ActiveCategories_NoEntries(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	repo.On("ListByUserID", mock.Anything, int64(7)).Return([]*models.SubscriptionEntry(nil), nil)

	s := NewEntitlementService(repo)
	categories, err := s.ActiveCategories(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, categories)
}

func TestEntitlementService_ActiveCategories_Mixed(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	repo.On("ListByUserID", mock.Anything, int64(7)).Return([]*models.SubscriptionEntry{
		{UserID: 7, Category: models.CategoryEquity, ExpiresAt: time.Now().Add(30 * 24 * time.Hour), IsActive: true},
		{UserID: 7, Category: models.CategoryFnO, ExpiresAt: time.Now().Add(-time.Hour), IsActive: true},
		{UserID: 7, Category: models.CategoryForexCrypto, ExpiresAt: time.Now().Add(time.Hour), IsActive: true},
	}, nil)

	s := NewEntitlementService(repo)
	categories, err := s.ActiveCategories(context.Background(), 7)

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{models.CategoryEquity, models.CategoryForexCrypto}, categories)
}

func TestEntitlementService_ActiveCategories_DeactivatedEntryExcluded(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	repo.On("ListByUserID", mock.Anything, int64(7)).Return([]*models.SubscriptionEntry{
		{UserID: 7, Category: models.CategoryEquity, ExpiresAt: time.Now().Add(time.Hour), IsActive: false},
	}, nil)

	s := NewEntitlementService(repo)
	categories, err := s.ActiveCategories(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, categories)
}

func TestEntitlementService_ActiveCategories_Deduplicates(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	repo.On("ListByUserID", mock.Anything, int64(7)).Return([]*models.SubscriptionEntry{
		{UserID: 7, Category: models.CategoryEquity, ExpiresAt: time.Now().Add(time.Hour), IsActive: true},
		{UserID: 7, Category: models.CategoryEquity, ExpiresAt: time.Now().Add(48 * time.Hour), IsActive: true},
	}, nil)

	s := NewEntitlementService(repo)
	categories, err := s.ActiveCategories(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []string{models.CategoryEquity}, categories)
}
