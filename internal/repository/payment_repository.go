package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/adchartview/tips-api/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *sql.Tx, payment *models.Payment) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, tx *sql.Tx, payment *models.Payment) (int64, error) {
	query := `INSERT INTO payments (user_id, plan_id, order_ref, payment_ref, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, payment.UserID, payment.PlanID, payment.OrderRef, payment.PaymentRef, payment.Amount, payment.Status).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, payment.UserID, payment.PlanID, payment.OrderRef, payment.PaymentRef, payment.Amount, payment.Status).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *paymentRepository) SumRevenue(ctx context.Context) (float64, error) {
	var sum float64
	query := "SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'success'"
	err := r.db.QueryRowContext(ctx, query).Scan(&sum)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return sum, nil
}
