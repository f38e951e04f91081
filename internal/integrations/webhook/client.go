package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client отправляет уведомления о новых записях на внешний вебхук
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
	now        func() time.Time
}

// NewClient создает новый экземпляр клиента вебхука
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
		now: time.Now,
	}
}

// Name название канала для логов и метрик
func (c *Client) Name() string {
	return "webhook"
}

// NotifyNewBooking отправляет {event, timestamp, data}
// Ошибки возвращаются вызывающему, который решает, блокировать ли из-за них что-то
func (c *Client) NotifyNewBooking(ctx context.Context, booking *domain.Booking) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(domain.NewBookingEvent(booking, c.now()))
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("Sending booking to webhook: booking_id=%d, bytes=%d", booking.ID, len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("Booking sent to webhook: booking_id=%d, status=%d", booking.ID, resp.StatusCode)

	return nil
}
