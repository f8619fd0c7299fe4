package delete_restaurant

import (
	"context"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
)

var _ RestaurantService = (*restaurantsService.Service)(nil)

type RestaurantService interface {
	Delete(ctx context.Context, id, userID int64, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
