package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/repository"
	"github.com/adchartview/tips-api/internal/transfer"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, pu *transfer.ProfileUpdate) error
	RegisterPushEndpoint(ctx context.Context, userID int64, oneSignalID string) error
}

type userService struct {
	u repository.UserRepository
}

func NewUserService(u repository.UserRepository) UserService {
	return &userService{
		u: u,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id int64) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isExist {
		slog.Info("user not found", "user_id", id)
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, pu *transfer.ProfileUpdate) error {
	if err := validate.Struct(pu); err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.GetUserInfo(ctx, userID)
	if err != nil {
		return err
	}

	user.Name = pu.Name
	user.Location = pu.Location
	user.Age = pu.Age
	user.Phone = pu.Phone
	user.ProfileCompleted = pu.Name != "" && pu.Location != "" && pu.Phone != ""

	return s.u.UpdateProfile(ctx, user)
}

// RegisterPushEndpoint stores the opaque OneSignal player id used later by
// the fan-out push batch. Failures here are the caller's to report, but a
// missing push id never blocks anything else.
func (s *userService) RegisterPushEndpoint(ctx context.Context, userID int64, oneSignalID string) error {
	if oneSignalID == "" {
		return fmt.Errorf("%w: onesignal_user_id is required", ErrValidation)
	}
	return s.u.SetOneSignalID(ctx, userID, oneSignalID)
}
