package gcalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client создает события в календаре оператора
type Client struct {
	srv        *calendar.Service
	calendarID string
	timezone   string
	log        Logger
}

// NewClient создает клиента по JSON-ключу сервисного аккаунта
func NewClient(ctx context.Context, credentialsJSON []byte, calendarID, timezone string, log Logger) (*Client, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse credentials: %v", ErrInternal, err)
	}
	return NewClientWithOptions(ctx, calendarID, timezone, log, option.WithHTTPClient(conf.Client(ctx)))
}

// NewClientWithOptions создает клиента с произвольными опциями (endpoint, http клиент)
func NewClientWithOptions(ctx context.Context, calendarID, timezone string, log Logger, opts ...option.ClientOption) (*Client, error) {
	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", ErrInternal, err)
	}
	return &Client{srv: srv, calendarID: calendarID, timezone: timezone, log: log}, nil
}

// CreateEvent создает событие и возвращает его ID
func (c *Client) CreateEvent(ctx context.Context, ev *Event) (string, error) {
	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Status:      "tentative",
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}

	created, err := c.srv.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: insert event: %v", ErrInsertEvent, err)
	}

	c.log.Info("Calendar event created: id=%s calendar=%s start=%s", created.Id, c.calendarID, event.Start.DateTime)
	return created.Id, nil
}
