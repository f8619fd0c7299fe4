package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с Mapbox Geocoding API
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента геокодера
func NewClient(baseURL, accessToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Geocode выполняет прямое геокодирование: адрес -> координаты.
// Берет первый (наиболее релевантный) результат.
func (c *Client) Geocode(ctx context.Context, address string) (*Location, error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json", c.baseURL, url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	q := req.URL.Query()
	q.Set("access_token", c.accessToken)
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAddressNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(payload.Features) == 0 {
		return nil, ErrAddressNotFound
	}

	center := payload.Features[0].Center
	if len(center) < 2 {
		return nil, fmt.Errorf("%w: feature center has %d coordinates", ErrInvalidResponse, len(center))
	}

	return &Location{
		Latitude:  center[1],
		Longitude: center[0],
	}, nil
}

// GeocodeWithGracefulDegradation выполняет геокодирование с graceful degradation.
// При недоступности геокодера возвращает ErrServiceDegraded, что позволяет
// сохранить ресторан без координат.
func (c *Client) GeocodeWithGracefulDegradation(ctx context.Context, address string) (*Location, error) {
	c.log.Info("Geocoding address: %q", address)

	location, err := c.Geocode(ctx, address)
	if err != nil {
		// Ненайденный адрес - бизнес-результат, пробрасываем дальше
		if err == ErrAddressNotFound {
			c.log.Info("Geocoder found no match for address: %q", address)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("Geocoder unavailable, applying graceful degradation for address %q: %v", address, err)
		return nil, fmt.Errorf("%w: address=%q, error=%v", ErrServiceDegraded, address, err)
	}

	c.log.Info("Successfully geocoded address %q: lat=%f, lng=%f", address, location.Latitude, location.Longitude)
	return location, nil
}
