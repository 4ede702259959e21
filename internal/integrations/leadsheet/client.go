package leadsheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client клиент вебхука, который складывает заявки в таблицу лидов
type Client struct {
	http *resty.Client
	url  string
	log  Logger
}

// NewClient создает новый экземпляр клиента вебхука
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		url: url,
		log: log,
	}
}

// Forward отправляет заявку в вебхук
func (c *Client) Forward(ctx context.Context, lead *Lead) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	var errResp ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(lead).
		SetError(&errResp).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: lead rejected: %s", ErrInvalidResponse, errResp.Message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}
}

// ForwardWithGracefulDegradation отправляет заявку, но не пробрасывает ошибку:
// заявка уже доставлена по почте, вебхук вторичен
func (c *Client) ForwardWithGracefulDegradation(ctx context.Context, lead *Lead) {
	err := c.Forward(ctx, lead)
	if errors.Is(err, ErrNotConfigured) {
		return
	}
	if err != nil {
		c.log.Error("Lead webhook unavailable, lead kind=%s email=%s not forwarded: %v", lead.Kind, lead.Email, err)
		return
	}
	c.log.Info("Lead kind=%s email=%s forwarded", lead.Kind, lead.Email)
}
