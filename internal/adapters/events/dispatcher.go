// Package events implements the EventDispatcher port. The webhook dispatcher
// delivers drained domain events to a configured HTTP endpoint; the log
// dispatcher is the stand-in used when webhook delivery is disabled.
package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/platform/httpclient"
)

// envelope is the wire form of a single delivered event.
type envelope struct {
	Name       string       `json:"name"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    domain.Event `json:"payload"`
}

// WebhookDispatcher POSTs one JSON envelope per event to a fixed endpoint.
// Deliveries within a batch run concurrently, bounded by the worker count.
// Delivery is best effort: a failed POST is reported to the caller but the
// batch is never retried as a whole, the instrumented client already retries
// individual requests.
type WebhookDispatcher struct {
	client   *httpclient.Client
	endpoint string
	workers  int
	logger   *slog.Logger
}

// NewWebhookDispatcher creates a dispatcher delivering to the given endpoint.
// workers caps in-flight deliveries per batch and must be >= 1.
func NewWebhookDispatcher(client *httpclient.Client, endpoint string, workers int, logger *slog.Logger) *WebhookDispatcher {
	if workers < 1 {
		workers = 1
	}
	return &WebhookDispatcher{
		client:   client,
		endpoint: endpoint,
		workers:  workers,
		logger:   logger,
	}
}

// Dispatch delivers the batch and returns the joined delivery errors, if any.
// An empty batch is a no-op.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	errs := make([]error, len(events))
	sem := make(chan struct{}, d.workers)
	var wg sync.WaitGroup

	for i, e := range events {
		wg.Add(1)
		go func(idx int, event domain.Event) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}

			errs[idx] = d.deliver(ctx, event)
		}(i, e)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			d.logger.WarnContext(ctx, "event delivery failed",
				slog.String("event", events[i].EventName()),
				slog.Any("error", err),
			)
		}
	}
	return errors.Join(errs...)
}

func (d *WebhookDispatcher) deliver(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(envelope{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt(),
		Payload:    event,
	})
	if err != nil {
		return fmt.Errorf("encoding event %s: %w", event.EventName(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request for event %s: %w", event.EventName(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(ctx, req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("delivering event %s: %w", event.EventName(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delivering event %s: endpoint returned %d", event.EventName(), resp.StatusCode)
	}
	return nil
}

// LogDispatcher records events in the service log instead of delivering them
// anywhere. Used when webhook delivery is disabled.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Dispatch logs each event at debug level and never fails.
func (d *LogDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	for _, e := range events {
		d.logger.DebugContext(ctx, "domain event",
			slog.String("event", e.EventName()),
			slog.Time("occurred_at", e.OccurredAt()),
		)
	}
	return nil
}
