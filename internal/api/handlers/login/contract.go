package login

import (
	"context"

	authService "github.com/thalibook/thalibook-api/internal/service/auth"
	"github.com/thalibook/thalibook-api/internal/service/auth/models"
)

var _ AuthService = (*authService.Service)(nil)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
