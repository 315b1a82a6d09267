package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adchartview/tips-api/internal/models"
)

type NotificationRepository interface {
	CreateBulk(ctx context.Context, userIDs []int64, message string) error
	ListByUserID(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkSeen(ctx context.Context, id, userID int64) (bool, error)
}

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateBulk inserts one notification row per recipient in a single statement.
func (r *notificationRepository) CreateBulk(ctx context.Context, userIDs []int64, message string) error {
	if len(userIDs) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(userIDs))
	args := make([]any, 0, len(userIDs)+1)
	args = append(args, message)
	for i, userID := range userIDs {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $1)", i+2))
		args = append(args, userID)
	}

	query := "INSERT INTO notifications (user_id, message) VALUES " + strings.Join(placeholders, ", ")
	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *notificationRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Notification, error) {
	query := `SELECT id, user_id, message, seen, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Seen, &n.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) MarkSeen(ctx context.Context, id, userID int64) (bool, error) {
	query := "UPDATE notifications SET seen = TRUE WHERE id = $1 AND user_id = $2"
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
