package wsrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/server/http/dto"
)

const (
	orderTrigger = "/notify/order"
	replyTrigger = "/notify/reply"
)

// ErrUnsupportedEvent is returned for events the relay has no trigger for.
var ErrUnsupportedEvent = errors.New("unsupported relay event")

// HTTPClient posts committed events to the realtime relay triggers.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a relay client. The per-request deadline comes from the caller context.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse relay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("relay url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Name implements worker.Sink.
func (c *HTTPClient) Name() string { return "relay" }

// Deliver posts the event to the matching trigger.
func (c *HTTPClient) Deliver(ctx context.Context, event model.Event) error {
	switch event.Kind {
	case model.EventOrderUpdate:
		err := c.post(ctx, orderTrigger, dto.OrderNotice{OrderID: event.OrderID, Status: string(event.Status)})
		if event.Notification == nil {
			return err
		}
		// The status row also lands in the owner's feed.
		return errors.Join(err, c.postNotification(ctx, *event.Notification))
	case model.EventNotificationNew:
		if event.Notification == nil {
			return fmt.Errorf("%w: notification missing", ErrUnsupportedEvent)
		}
		return c.postNotification(ctx, *event.Notification)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedEvent, event.Kind)
	}
}

func (c *HTTPClient) postNotification(ctx context.Context, n model.Notification) error {
	return c.post(ctx, replyTrigger, dto.ReplyNotice{UserID: n.UserID, Notification: dto.NewNotification(n)})
}

func (c *HTTPClient) post(ctx context.Context, trigger string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, trigger)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
	c.logger.Error("relay request failed",
		slog.String("trigger", trigger),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(respBody)))
	return fmt.Errorf("relay error: %s", resp.Status)
}
