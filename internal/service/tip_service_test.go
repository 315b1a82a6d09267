package service

import (
	"context"
	"errors"
	"testing"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validTipCreation() *transfer.TipCreation {
	return &transfer.TipCreation{
		Category:    models.CategoryEquity,
		StockName:   "RELIANCE",
		Action:      "buy",
		EntryPrice:  2850,
		TargetPrice: 2950,
		StopLoss:    2800,
		Timeframe:   "intraday",
		Confidence:  "high",
	}
}

func TestTipList_AdminSeesEverything(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)
	ent := new(EntitlementServiceMock)

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Role: models.RoleAdmin}, true, nil)
	all := []*models.Tip{{ID: 1}, {ID: 2}, {ID: 3}}
	tipRepo.On("ListAll", mock.Anything).Return(all, nil)

	s := NewTipService(userRepo, tipRepo, ent, new(NotifierServiceMock), nil)
	tips, err := s.List(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, all, tips)
	ent.AssertNotCalled(t, "ActiveCategories", mock.Anything, mock.Anything)
}

func TestTipList_NoSubscriptionSeesDemoOnly(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)
	ent := new(EntitlementServiceMock)

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(&models.User{ID: 2, Role: models.RoleUser}, true, nil)
	ent.On("ActiveCategories", mock.Anything, int64(2)).Return([]string(nil), nil)
	demo := []*models.Tip{{ID: 9, IsDemo: true}}
	tipRepo.On("ListDemo", mock.Anything).Return(demo, nil)

	s := NewTipService(userRepo, tipRepo, ent, new(NotifierServiceMock), nil)
	tips, err := s.List(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, demo, tips)
	tipRepo.AssertNotCalled(t, "ListByCategories", mock.Anything, mock.Anything)
}

func TestTipList_SubscriberSeesEntitledCategories(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)
	ent := new(EntitlementServiceMock)

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(&models.User{ID: 2, Role: models.RoleUser}, true, nil)
	ent.On("ActiveCategories", mock.Anything, int64(2)).Return([]string{models.CategoryEquity}, nil)
	entitled := []*models.Tip{{ID: 1, Category: models.CategoryEquity}, {ID: 9, IsDemo: true}}
	tipRepo.On("ListByCategories", mock.Anything, []string{models.CategoryEquity}).Return(entitled, nil)

	s := NewTipService(userRepo, tipRepo, ent, new(NotifierServiceMock), nil)
	tips, err := s.List(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, entitled, tips)
}

func TestTipList_UnknownUser(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, false, nil)

	s := NewTipService(userRepo, new(TipRepoMock), new(EntitlementServiceMock), new(NotifierServiceMock), nil)
	_, err := s.List(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTipCreate_NonAdminRejected(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(&models.User{ID: 2, Role: models.RoleUser}, true, nil)

	s := NewTipService(userRepo, tipRepo, new(EntitlementServiceMock), new(NotifierServiceMock), nil)
	_, err := s.Create(context.Background(), 2, validTipCreation(), nil)

	assert.ErrorIs(t, err, ErrNotAuthorized)
	tipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTipCreate_UnknownCategoryRejected(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Role: models.RoleAdmin}, true, nil)

	tc := validTipCreation()
	tc.Category = "penny_stocks"

	s := NewTipService(userRepo, new(TipRepoMock), new(EntitlementServiceMock), new(NotifierServiceMock), nil)
	_, err := s.Create(context.Background(), 1, tc, nil)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestTipCreate_StoresAndFansOut(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)
	notifier := new(NotifierServiceMock)

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Role: models.RoleAdmin}, true, nil)
	tipRepo.On("Create", mock.Anything, mock.MatchedBy(func(tip *models.Tip) bool {
		return tip.Category == models.CategoryEquity && tip.StockName == "RELIANCE" && tip.CreatedBy == 1
	})).Return(int64(42), nil)
	notifier.On("NotifyNewTip", mock.Anything, mock.MatchedBy(func(tip *models.Tip) bool {
		return tip.ID == 42
	})).Return(nil)

	s := NewTipService(userRepo, tipRepo, new(EntitlementServiceMock), notifier, nil)
	tip, err := s.Create(context.Background(), 1, validTipCreation(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(42), tip.ID)
	notifier.AssertExpectations(t)
}

func TestTipCreate_FanOutFailureDoesNotFailCreate(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)
	notifier := new(NotifierServiceMock)

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Role: models.RoleAdmin}, true, nil)
	tipRepo.On("Create", mock.Anything, mock.Anything).Return(int64(42), nil)
	notifier.On("NotifyNewTip", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	s := NewTipService(userRepo, tipRepo, new(EntitlementServiceMock), notifier, nil)
	tip, err := s.Create(context.Background(), 1, validTipCreation(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(42), tip.ID)
}

func TestTipUpdate_NotFound(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Role: models.RoleAdmin}, true, nil)
	tipRepo.On("Update", mock.Anything, mock.Anything).Return(false, nil)

	tu := &transfer.TipUpdate{ID: 77, TipCreation: *validTipCreation()}

	s := NewTipService(userRepo, tipRepo, new(EntitlementServiceMock), new(NotifierServiceMock), nil)
	_, err := s.Update(context.Background(), 1, tu)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTipRemove_NonAdminRejected(t *testing.T) {
	userRepo := new(UserRepoMock)
	tipRepo := new(TipRepoMock)

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(&models.User{ID: 2, Role: models.RoleUser}, true, nil)

	s := NewTipService(userRepo, tipRepo, new(EntitlementServiceMock), new(NotifierServiceMock), nil)
	err := s.Remove(context.Background(), 2, 42)

	assert.ErrorIs(t, err, ErrNotAuthorized)
	tipRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
