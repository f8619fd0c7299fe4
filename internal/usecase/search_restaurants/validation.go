package search_restaurants

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize exceeds %d", ErrInvalidInput, domain.MaxPartySize)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(requestDate, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.Before(today) {
		return ErrInvalidDate
	}

	return nil
}

// buildLocationFilter превращает строку локации в фильтр репозитория.
// Пятизначное число трактуется как zip-код и расширяется до диапазона
// соседних кодов, все остальное - как название города.
func buildLocationFilter(location string) restaurantRepo.ApprovedFilter {
	if location == "" {
		return restaurantRepo.ApprovedFilter{}
	}

	if zipPattern.MatchString(location) {
		zip, _ := strconv.Atoi(location)
		from := zip - domain.ZipSearchRadius
		to := zip + domain.ZipSearchRadius
		if from < 0 {
			from = 0
		}
		return restaurantRepo.ApprovedFilter{ZipFrom: &from, ZipTo: &to}
	}

	return restaurantRepo.ApprovedFilter{City: &location}
}
