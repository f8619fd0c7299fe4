package get_table_availability

import (
	"context"

	availabilityUseCase "github.com/thalibook/thalibook-api/internal/usecase/get_table_availability"
)

var _ UseCase = (*availabilityUseCase.UseCase)(nil)

type UseCase interface {
	Execute(ctx context.Context, req *availabilityUseCase.Request) (*availabilityUseCase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
