package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/validation"
)

// HomePath is where a successful login lands.
const HomePath = "/dashboard"

type AuthService struct {
	client    *apiclient.Client
	navigator navigation.Navigator
	notifier  notify.Notifier
	logger    *logrus.Logger
}

func NewAuthService(client *apiclient.Client, navigator navigation.Navigator, notifier notify.Notifier, logger *logrus.Logger) *AuthService {
	return &AuthService{
		client:    client,
		navigator: navigator,
		notifier:  notifier,
		logger:    logger,
	}
}

// Login validates dto, exchanges it for a token and navigates home. Field
// errors come back as *forms.ValidationError without contacting the API.
func (s *AuthService) Login(ctx context.Context, dto LoginDTO) error {
	dto = dto.Normalize()
	if res := validation.Validate(dto); !res.Success {
		return &forms.ValidationError{Fields: res.FieldErrors}
	}
	if err := s.client.Login(ctx, dto.Email, dto.Password); err != nil {
		s.notifier.Error(loginMessage(err))
		return err
	}
	s.logger.WithField("email", dto.Email).Info("signed in")
	s.notifier.Success("Login successful!")
	s.navigator.Replace(HomePath)
	return nil
}

func loginMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message("Login failed")
	}
	return "Network error. Please check your connection."
}

func (s *AuthService) Logout() error {
	if err := s.client.Logout(); err != nil {
		return errors.Wrap(err, "logout")
	}
	return nil
}
