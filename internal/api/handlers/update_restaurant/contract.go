package update_restaurant

import (
	"context"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
)

var _ RestaurantService = (*restaurantsService.Service)(nil)

type RestaurantService interface {
	Update(ctx context.Context, id, userID int64, role domain.Role, req *models.UpdateRestaurantRequest) (*models.RestaurantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
