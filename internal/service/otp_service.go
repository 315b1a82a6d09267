package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/repository"
)

const otpValidity = 5 * time.Minute

// OtpService keeps a single active 6-digit code per phone number; resending
// supersedes the previous code.
type OtpService interface {
	Generate(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) error
}

type otpService struct {
	or repository.OtpRepository
}

func NewOtpService(or repository.OtpRepository) OtpService {
	return &otpService{or: or}
}

func (s *otpService) Generate(ctx context.Context, phone string) (string, error) {
	code := fmt.Sprintf("%06d", 100000+rand.Intn(900000))

	if err := s.or.DeleteByPhone(ctx, phone); err != nil {
		return "", err
	}

	_, err := s.or.Create(ctx, &models.Otp{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(otpValidity),
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

func (s *otpService) Verify(ctx context.Context, phone, code string) error {
	otp, isExist, err := s.or.GetByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if !isExist {
		return fmt.Errorf("%w: no code sent for this number", ErrInvalidOTP)
	}

	if otp.ExpiresAt.Before(time.Now()) {
		s.or.DeleteByPhone(ctx, phone)
		return ErrExpiredOTP
	}

	if otp.Code != code {
		return ErrInvalidOTP
	}

	return s.or.DeleteByPhone(ctx, phone)
}
