package search_restaurants

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	searchUseCase "github.com/thalibook/thalibook-api/internal/usecase/search_restaurants"
	"github.com/thalibook/thalibook-api/pkg/types"
)

// ToUseCaseRequest разбирает query-параметры поиска
func ToUseCaseRequest(query url.Values) (*searchUseCase.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("invalid date format (expected %s): %w", domain.DateFormat, err)
	}

	timeString, err := types.NewTimeStringFromString(query.Get("time"))
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	partySize, err := strconv.Atoi(query.Get("partySize"))
	if err != nil {
		return nil, fmt.Errorf("invalid partySize: %w", err)
	}

	return &searchUseCase.Request{
		Date:      date,
		Time:      timeString,
		PartySize: partySize,
		Location:  query.Get("location"),
	}, nil
}
