package search_restaurants

import (
	"context"

	searchUseCase "github.com/thalibook/thalibook-api/internal/usecase/search_restaurants"
)

var _ UseCase = (*searchUseCase.UseCase)(nil)

type UseCase interface {
	Execute(ctx context.Context, req *searchUseCase.Request) (*searchUseCase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
