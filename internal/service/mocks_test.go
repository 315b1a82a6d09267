package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type SubscriptionRepoMock struct{ mock.Mock }

func (m *SubscriptionRepoMock) ListByUserID(ctx context.Context, userID int64) ([]*models.SubscriptionEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionEntry), args.Error(1)
}

func (m *SubscriptionRepoMock) GetUnexpired(ctx context.Context, tx *sql.Tx, userID int64, category string, now time.Time) (*models.SubscriptionEntry, bool, error) {
	args := m.Called(ctx, tx, userID, category, now)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.SubscriptionEntry), args.Bool(1), args.Error(2)
}

func (m *SubscriptionRepoMock) Create(ctx context.Context, tx *sql.Tx, entry *models.SubscriptionEntry) (int64, error) {
	args := m.Called(ctx, tx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SubscriptionRepoMock) ListEntitledUsers(ctx context.Context, category string, now time.Time) ([]*models.User, error) {
	args := m.Called(ctx, category, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *SubscriptionRepoMock) CountActiveSubscribers(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) GetByID(ctx context.Context, id int64) (*models.User, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *UserRepoMock) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *UserRepoMock) Create(ctx context.Context, tx *sql.Tx, user *models.User) (int64, error) {
	args := m.Called(ctx, tx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepoMock) UpdateProfile(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepoMock) SetOneSignalID(ctx context.Context, userID int64, oneSignalID string) error {
	return m.Called(ctx, userID, oneSignalID).Error(0)
}

func (m *UserRepoMock) LockForUpdate(ctx context.Context, tx *sql.Tx, userID int64) error {
	return m.Called(ctx, tx, userID).Error(0)
}

func (m *UserRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type TipRepoMock struct{ mock.Mock }

func (m *TipRepoMock) GetByID(ctx context.Context, id int64) (*models.Tip, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Tip), args.Bool(1), args.Error(2)
}

func (m *TipRepoMock) Create(ctx context.Context, tip *models.Tip) (int64, error) {
	args := m.Called(ctx, tip)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TipRepoMock) Update(ctx context.Context, tip *models.Tip) (bool, error) {
	args := m.Called(ctx, tip)
	return args.Bool(0), args.Error(1)
}

func (m *TipRepoMock) Remove(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *TipRepoMock) ListAll(ctx context.Context) ([]*models.Tip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tip), args.Error(1)
}

func (m *TipRepoMock) ListDemo(ctx context.Context) ([]*models.Tip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tip), args.Error(1)
}

func (m *TipRepoMock) ListByCategories(ctx context.Context, categories []string) ([]*models.Tip, error) {
	args := m.Called(ctx, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tip), args.Error(1)
}

func (m *TipRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TipRepoMock) CountDemo(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type NotificationRepoMock struct{ mock.Mock }

func (m *NotificationRepoMock) CreateBulk(ctx context.Context, userIDs []int64, message string) error {
	return m.Called(ctx, userIDs, message).Error(0)
}

func (m *NotificationRepoMock) ListByUserID(ctx context.Context, userID int64) ([]*models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *NotificationRepoMock) MarkSeen(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

type PlanRepoMock struct{ mock.Mock }

func (m *PlanRepoMock) GetByID(ctx context.Context, id int64) (*models.Plan, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Plan), args.Bool(1), args.Error(2)
}

func (m *PlanRepoMock) List(ctx context.Context) ([]*models.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, tx *sql.Tx, payment *models.Payment) (int64, error) {
	args := m.Called(ctx, tx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentRepoMock) SumRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type OtpRepoMock struct{ mock.Mock }

func (m *OtpRepoMock) GetByPhone(ctx context.Context, phone string) (*models.Otp, bool, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Otp), args.Bool(1), args.Error(2)
}

func (m *OtpRepoMock) Create(ctx context.Context, otp *models.Otp) (int64, error) {
	args := m.Called(ctx, otp)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OtpRepoMock) DeleteByPhone(ctx context.Context, phone string) error {
	return m.Called(ctx, phone).Error(0)
}

func (m *OtpRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type PushServiceMock struct{ mock.Mock }

func (m *PushServiceMock) SendBatch(ctx context.Context, playerIDs []string, title, body, url string) error {
	return m.Called(ctx, playerIDs, title, body, url).Error(0)
}

type NotifierServiceMock struct{ mock.Mock }

func (m *NotifierServiceMock) NotifyNewTip(ctx context.Context, tip *models.Tip) error {
	return m.Called(ctx, tip).Error(0)
}

type EntitlementServiceMock struct{ mock.Mock }

func (m *EntitlementServiceMock) ActiveEntries(ctx context.Context, userID int64) ([]*models.SubscriptionEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionEntry), args.Error(1)
}

func (m *EntitlementServiceMock) ActiveCategories(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
