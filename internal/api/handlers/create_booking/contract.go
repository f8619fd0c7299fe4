package create_booking

import (
	"context"

	createBooking "github.com/thalibook/thalibook-api/internal/usecase/create_booking"
)

var _ UseCase = (*createBooking.UseCase)(nil)

type UseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
