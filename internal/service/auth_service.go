package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adchartview/tips-api/internal/models"
	"github.com/adchartview/tips-api/internal/repository"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	config "github.com/adchartview/tips-api/configs"
)

type AuthService interface {
	LoginCallback(ctx context.Context, code string) (*models.User, error)
}

type authService struct {
	cfg config.Config
	u   repository.UserRepository
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
	}
}

// LoginCallback exchanges the Google OAuth code, fetches the user's profile
// and creates the account on first login.
func (s *authService) LoginCallback(ctx context.Context, code string) (*models.User, error) {
	if code == "" {
		err := errors.New("code is empty")
		slog.Info(err.Error())
		return nil, err
	}

	oauth2Config := &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	if oauth2Config.ClientID == "" || oauth2Config.ClientSecret == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return nil, err
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	client := oauth2Config.Client(ctx, token)

	userInfo, err := GetUserInfo(client)
	if err != nil {
		return nil, err
	}

	user, isExist, err := s.u.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return nil, err
	}

	if !isExist {
		newUser := &models.User{
			GoogleID:       userInfo.ID,
			Email:          userInfo.Email,
			Name:           userInfo.Name,
			ProfilePicture: userInfo.Picture,
			Role:           models.RoleUser,
		}

		userID, err := s.u.Create(ctx, nil, newUser)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		newUser.ID = userID
		return newUser, nil
	}

	return user, nil
}
