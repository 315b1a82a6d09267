package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/adchartview/tips-api/internal/models"
)

type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Plan, bool, error)
	List(ctx context.Context) ([]*models.Plan, error)
}

type planRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByID(ctx context.Context, id int64) (*models.Plan, bool, error) {
	var plan models.Plan
	query := "SELECT id, name, price, duration, category, created_at FROM plans WHERE id = $1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&plan.ID, &plan.Name, &plan.Price, &plan.Duration, &plan.Category, &plan.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &plan, true, nil
}

func (r *planRepository) List(ctx context.Context) ([]*models.Plan, error) {
	query := "SELECT id, name, price, duration, category, created_at FROM plans ORDER BY price"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.Price, &plan.Duration, &plan.Category, &plan.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		plans = append(plans, &plan)
	}
	return plans, rows.Err()
}
