package register

import (
	"context"

	authService "github.com/thalibook/thalibook-api/internal/service/auth"
	"github.com/thalibook/thalibook-api/internal/service/auth/models"
)

var _ AuthService = (*authService.Service)(nil)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
