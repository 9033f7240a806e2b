package bookingservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BookingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CountBySchedule возвращает количество бронирований по расписанию
func (c *Client) CountBySchedule(ctx context.Context, scheduleID int64) (int, error) {
	url := fmt.Sprintf("%s/internal/schedules/%d/bookings/count", c.baseURL, scheduleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return 0, ErrScheduleNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var count BookingsCount
	if err := json.NewDecoder(resp.Body).Decode(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return count.Count, nil
}

// HasBookings возвращает true, если у расписания есть хотя бы одно бронирование
// Расписание, неизвестное сервису бронирований, считается расписанием без
// бронирований - удаление в этом случае блокировать нельзя
func (c *Client) HasBookings(ctx context.Context, scheduleID int64) (bool, error) {
	count, err := c.CountBySchedule(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}
