package businessservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с BusinessService
// Профили бизнесов кэшируются в LRU с TTL: дашборд дергает доступные
// слоты гораздо чаще, чем меняется недельное расписание
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *profileCache
	log        Logger
}

// NewClient создает новый экземпляр клиента BusinessService
// cacheSize <= 0 отключает кэширование профилей
func NewClient(baseURL string, timeout time.Duration, cacheSize int, cacheTTL time.Duration, log Logger) (*Client, error) {
	cache, err := newProfileCache(cacheSize, cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to init profile cache: %v", ErrInternal, err)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
		log:   log,
	}, nil
}

// GetBusiness получает профиль бизнеса (таймзона + недельное расписание)
func (c *Client) GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error) {
	if cached, ok := c.cache.get(businessID); ok {
		c.log.Info("GetBusiness: cache hit for business id=%d", businessID)
		return cached, nil
	}

	url := fmt.Sprintf("%s/internal/businesses/%d", c.baseURL, businessID)

	var business Business
	if err := c.getJSON(ctx, url, &business, ErrBusinessNotFound); err != nil {
		return nil, err
	}

	result := business.ToDomain()
	c.cache.put(businessID, result)

	return result, nil
}

// GetService получает услугу бизнеса (длительность для расчёта слотов)
func (c *Client) GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error) {
	url := fmt.Sprintf("%s/internal/businesses/%d/services/%d", c.baseURL, businessID, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return service.ToDomain(), nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на 404
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
