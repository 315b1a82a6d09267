package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/lib/pq"
)

type TipRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Tip, bool, error)
	Create(ctx context.Context, tip *models.Tip) (int64, error)
	Update(ctx context.Context, tip *models.Tip) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	ListAll(ctx context.Context) ([]*models.Tip, error)
	ListDemo(ctx context.Context) ([]*models.Tip, error)
	ListByCategories(ctx context.Context, categories []string) ([]*models.Tip, error)
	Count(ctx context.Context) (int64, error)
	CountDemo(ctx context.Context) (int64, error)
}

type tipRepository struct {
	db *sql.DB
}

func NewTipRepository(db *sql.DB) TipRepository {
	return &tipRepository{db: db}
}

const tipColumns = `id, category, stock_name, action, entry_price, target_price, stop_loss,
	timeframe, confidence, note, is_demo, chart_key, created_by, created_at, updated_at`

func scanTip(row interface{ Scan(...any) error }) (*models.Tip, error) {
	var tip models.Tip
	err := row.Scan(&tip.ID, &tip.Category, &tip.StockName, &tip.Action, &tip.EntryPrice, &tip.TargetPrice,
		&tip.StopLoss, &tip.Timeframe, &tip.Confidence, &tip.Note, &tip.IsDemo, &tip.ChartKey,
		&tip.CreatedBy, &tip.CreatedAt, &tip.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

func (r *tipRepository) GetByID(ctx context.Context, id int64) (*models.Tip, bool, error) {
	query := "SELECT " + tipColumns + " FROM tips WHERE id = $1"
	tip, err := scanTip(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return tip, true, nil
}

func (r *tipRepository) Create(ctx context.Context, tip *models.Tip) (int64, error) {
	query := `INSERT INTO tips (category, stock_name, action, entry_price, target_price, stop_loss,
		timeframe, confidence, note, is_demo, chart_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query, tip.Category, tip.StockName, tip.Action, tip.EntryPrice,
		tip.TargetPrice, tip.StopLoss, tip.Timeframe, tip.Confidence, tip.Note, tip.IsDemo,
		tip.ChartKey, tip.CreatedBy).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *tipRepository) Update(ctx context.Context, tip *models.Tip) (bool, error) {
	query := `
		UPDATE tips
		SET category = $1,
			stock_name = $2,
			action = $3,
			entry_price = $4,
			target_price = $5,
			stop_loss = $6,
			timeframe = $7,
			confidence = $8,
			note = $9,
			is_demo = $10,
			updated_at = $11
		WHERE id = $12
	`
	res, err := r.db.ExecContext(ctx, query, tip.Category, tip.StockName, tip.Action, tip.EntryPrice,
		tip.TargetPrice, tip.StopLoss, tip.Timeframe, tip.Confidence, tip.Note, tip.IsDemo,
		time.Now(), tip.ID)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *tipRepository) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tips WHERE id = $1", id)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *tipRepository) ListAll(ctx context.Context) ([]*models.Tip, error) {
	query := "SELECT " + tipColumns + " FROM tips ORDER BY created_at DESC"
	return r.list(ctx, query)
}

func (r *tipRepository) ListDemo(ctx context.Context) ([]*models.Tip, error) {
	query := "SELECT " + tipColumns + " FROM tips WHERE is_demo = TRUE ORDER BY created_at DESC"
	return r.list(ctx, query)
}

// ListByCategories returns tips in any of the given categories plus demo
// tips, newest first.
func (r *tipRepository) ListByCategories(ctx context.Context, categories []string) ([]*models.Tip, error) {
	query := "SELECT " + tipColumns + ` FROM tips
		WHERE category = ANY($1) OR is_demo = TRUE ORDER BY created_at DESC`
	return r.list(ctx, query, pq.Array(categories))
}

func (r *tipRepository) list(ctx context.Context, query string, args ...any) ([]*models.Tip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var tips []*models.Tip
	for rows.Next() {
		tip, err := scanTip(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		tips = append(tips, tip)
	}
	return tips, rows.Err()
}

func (r *tipRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tips").Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func (r *tipRepository) CountDemo(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tips WHERE is_demo = TRUE").Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}
