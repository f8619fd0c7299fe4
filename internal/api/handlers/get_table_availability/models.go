package get_table_availability

import (
	"fmt"
	"net/url"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	availabilityUseCase "github.com/thalibook/thalibook-api/internal/usecase/get_table_availability"
	"github.com/thalibook/thalibook-api/pkg/types"
)

// ToUseCaseRequest собирает запрос из path-параметра и query
func ToUseCaseRequest(restaurantID int64, query url.Values) (*availabilityUseCase.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("invalid date format (expected %s): %w", domain.DateFormat, err)
	}

	timeString, err := types.NewTimeStringFromString(query.Get("time"))
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	return &availabilityUseCase.Request{
		RestaurantID: restaurantID,
		Date:         date,
		Time:         timeString,
	}, nil
}
