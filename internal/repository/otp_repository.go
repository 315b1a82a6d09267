package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/adchartview/tips-api/internal/models"
)

type OtpRepository interface {
	GetByPhone(ctx context.Context, phone string) (*models.Otp, bool, error)
	Create(ctx context.Context, otp *models.Otp) (int64, error)
	DeleteByPhone(ctx context.Context, phone string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type otpRepository struct {
	db *sql.DB
}

func NewOtpRepository(db *sql.DB) OtpRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) GetByPhone(ctx context.Context, phone string) (*models.Otp, bool, error) {
	var otp models.Otp
	query := "SELECT id, phone, code, expires_at, created_at FROM otps WHERE phone = $1"
	err := r.db.QueryRowContext(ctx, query, phone).Scan(&otp.ID, &otp.Phone, &otp.Code, &otp.ExpiresAt, &otp.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &otp, true, nil
}

func (r *otpRepository) Create(ctx context.Context, otp *models.Otp) (int64, error) {
	query := "INSERT INTO otps (phone, code, expires_at) VALUES ($1, $2, $3) RETURNING id"
	var id int64
	err := r.db.QueryRowContext(ctx, query, otp.Phone, otp.Code, otp.ExpiresAt).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *otpRepository) DeleteByPhone(ctx context.Context, phone string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM otps WHERE phone = $1", phone)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *otpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM otps WHERE expires_at < $1", now)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	deleted, _ := res.RowsAffected()
	return deleted, nil
}
