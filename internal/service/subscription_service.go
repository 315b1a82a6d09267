package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/repository"
	"github.com/adchartview/tips-api/internal/transfer"

	config "github.com/adchartview/tips-api/configs"
)

type SubscriptionService interface {
	VerifyAndPurchase(ctx context.Context, userID int64, pv *transfer.PaymentVerification) (*models.SubscriptionEntry, error)
}

type subscriptionService struct {
	cfg config.Config
	db  *sql.DB
	ur  repository.UserRepository
	sr  repository.SubscriptionRepository
	pl  repository.PlanRepository
	pm  repository.PaymentRepository
}

func NewSubscriptionService(
	cfg config.Config,
	db *sql.DB,
	ur repository.UserRepository,
	sr repository.SubscriptionRepository,
	pl repository.PlanRepository,
	pm repository.PaymentRepository) SubscriptionService {
	return &subscriptionService{
		cfg: cfg,
		db:  db,
		ur:  ur,
		sr:  sr,
		pl:  pl,
		pm:  pm,
	}
}

// VerifyAndPurchase checks the gateway signature and, inside a single
// transaction, rejects duplicate active plans before appending the new entry
// and its payment audit row. Nothing is written when verification fails.
func (s *subscriptionService) VerifyAndPurchase(ctx context.Context, userID int64, pv *transfer.PaymentVerification) (*models.SubscriptionEntry, error) {
	if err := validate.Struct(pv); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if !VerifySignature(s.cfg.RazorpayKeySecret, pv.OrderRef, pv.PaymentRef, pv.Signature) {
		slog.Info("payment signature mismatch", "order_ref", pv.OrderRef)
		return nil, ErrInvalidSignature
	}

	plan, isExist, err := s.pl.GetByID(ctx, pv.PlanID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return nil, fmt.Errorf("%w: plan %d", ErrNotFound, pv.PlanID)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	// Serializes concurrent purchases for the same user so the duplicate
	// check below cannot race with another insert.
	if err := s.ur.LockForUpdate(ctx, tx, userID); err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	existing, hasExisting, err := s.sr.GetUnexpired(ctx, tx, userID, plan.Category, now)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if hasExisting {
		tx.Rollback()
		return nil, fmt.Errorf("%w: %s plan valid until %s", ErrActiveSubscription,
			plan.Category, existing.ExpiresAt.Format("2006-01-02"))
	}

	entry := &models.SubscriptionEntry{
		UserID:    userID,
		Category:  plan.Category,
		ExpiresAt: ExpiryFromDuration(plan.Duration, now),
		IsActive:  true,
	}

	entryID, err := s.sr.Create(ctx, tx, entry)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	entry.ID = entryID

	_, err = s.pm.Create(ctx, tx, &models.Payment{
		UserID:     userID,
		PlanID:     plan.ID,
		OrderRef:   pv.OrderRef,
		PaymentRef: pv.PaymentRef,
		Amount:     pv.Amount,
		Status:     "success",
	})
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	return entry, nil
}

// VerifySignature checks the gateway callback signature:
// hex(HMAC-SHA256(secret, orderRef + "|" + paymentRef)).
func VerifySignature(secret, orderRef, paymentRef, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ExpiryFromDuration advances now by the plan's free-form duration string.
// The first embedded integer is the count (1 when absent); the unit is
// matched as a case-insensitive substring with precedence month, then year,
// then day, so strings carrying several unit-like words resolve one way.
// Month is assumed when no unit word matches.
func ExpiryFromDuration(duration string, now time.Time) time.Time {
	n := firstInt(duration)
	if n == 0 {
		n = 1
	}

	lower := strings.ToLower(duration)
	switch {
	case strings.Contains(lower, "month"):
		return now.AddDate(0, n, 0)
	case strings.Contains(lower, "year"):
		return now.AddDate(n, 0, 0)
	case strings.Contains(lower, "day"):
		return now.AddDate(0, 0, n)
	default:
		return now.AddDate(0, n, 0)
	}
}

func firstInt(s string) int {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start != -1 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}
