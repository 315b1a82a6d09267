package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/adchartview/tips-api/internal/models"
)

type SubscriptionRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.SubscriptionEntry, error)
	GetUnexpired(ctx context.Context, tx *sql.Tx, userID int64, category string, now time.Time) (*models.SubscriptionEntry, bool, error)
	Create(ctx context.Context, tx *sql.Tx, entry *models.SubscriptionEntry) (int64, error)
	ListEntitledUsers(ctx context.Context, category string, now time.Time) ([]*models.User, error)
	CountActiveSubscribers(ctx context.Context, now time.Time) (int64, error)
}

type subscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.SubscriptionEntry, error) {
	query := `SELECT id, user_id, plan_category, expires_at, is_active, created_at
		FROM subscription_entries WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var entries []*models.SubscriptionEntry
	for rows.Next() {
		var entry models.SubscriptionEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Category, &entry.ExpiresAt, &entry.IsActive, &entry.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// GetUnexpired returns the user's entry for a category whose expiry is still
// in the future, active or not. Runs inside the purchase transaction when tx
// is non-nil.
func (r *subscriptionRepository) GetUnexpired(ctx context.Context, tx *sql.Tx, userID int64, category string, now time.Time) (*models.SubscriptionEntry, bool, error) {
	query := `SELECT id, user_id, plan_category, expires_at, is_active, created_at
		FROM subscription_entries
		WHERE user_id = $1 AND plan_category = $2 AND expires_at > $3
		ORDER BY expires_at DESC LIMIT 1`

	var entry models.SubscriptionEntry
	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, userID, category, now).Scan(&entry.ID, &entry.UserID, &entry.Category, &entry.ExpiresAt, &entry.IsActive, &entry.CreatedAt)
	} else {
		err = r.db.QueryRowContext(ctx, query, userID, category, now).Scan(&entry.ID, &entry.UserID, &entry.Category, &entry.ExpiresAt, &entry.IsActive, &entry.CreatedAt)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &entry, true, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, tx *sql.Tx, entry *models.SubscriptionEntry) (int64, error) {
	query := `INSERT INTO subscription_entries (user_id, plan_category, expires_at, is_active)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, entry.UserID, entry.Category, entry.ExpiresAt, entry.IsActive).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, entry.UserID, entry.Category, entry.ExpiresAt, entry.IsActive).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

// ListEntitledUsers selects the fan-out recipients for a category: users
// holding an active, unexpired entry. Admins are excluded, they see
// everything without subscribing.
func (r *subscriptionRepository) ListEntitledUsers(ctx context.Context, category string, now time.Time) ([]*models.User, error) {
	query := `SELECT DISTINCT u.id, u.onesignal_id
		FROM users u
		JOIN subscription_entries s ON s.user_id = u.id
		WHERE s.plan_category = $1 AND s.expires_at > $2 AND s.is_active = TRUE AND u.role = $3`
	rows, err := r.db.QueryContext(ctx, query, category, now, models.RoleUser)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.OneSignalID); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (r *subscriptionRepository) CountActiveSubscribers(ctx context.Context, now time.Time) (int64, error) {
	query := `SELECT COUNT(DISTINCT user_id) FROM subscription_entries
		WHERE expires_at > $1 AND is_active = TRUE`
	var count int64
	err := r.db.QueryRowContext(ctx, query, now).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}
