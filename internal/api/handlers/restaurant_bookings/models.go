package restaurant_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/internal/service/bookings/models"
	"github.com/thalibook/thalibook-api/pkg/ptr"
)

// ToServiceRequest собирает запрос из path-параметра, query и claims
func ToServiceRequest(restaurantID, userID int64, role domain.Role, query url.Values) (*models.GetRestaurantBookingsRequest, error) {
	req := &models.GetRestaurantBookingsRequest{
		UserID:       userID,
		Role:         role,
		RestaurantID: restaurantID,
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date format (expected %s): %w", domain.DateFormat, err)
		}
		req.Date = &date
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
