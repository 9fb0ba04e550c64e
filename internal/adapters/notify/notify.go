// Package notify delivers assignment events to an external webhook. The
// delivery transport behind the webhook (email, push, websocket fan-out) is
// someone else's problem.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	WebhookURL string        `env:"NOTIFY_WEBHOOK_URL"`
	Timeout    time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
}

type assignedEvent struct {
	Event      string `json:"event"`
	OrderID    uint   `json:"order_id"`
	CustomerID uint   `json:"customer_id"`
	BoosterID  uint   `json:"booster_id"`
}

type Notifier struct {
	log    *zap.Logger
	client *http.Client
	url    string
}

type option func(*Notifier)

func Logger(log *zap.Logger) option {
	return func(n *Notifier) {
		if log != nil {
			n.log = log
		}
	}
}

func New(cfg *Config, options ...option) *Notifier {
	n := &Notifier{
		log:    zap.NewNop(),
		client: &http.Client{Timeout: cfg.Timeout},
		url:    cfg.WebhookURL,
	}

	for _, opt := range options {
		opt(n)
	}

	return n
}

// BoosterAssigned posts the assignment event. Without a configured webhook
// the event is only logged.
func (n *Notifier) BoosterAssigned(ctx context.Context, orderID, customerID, boosterID uint) error {
	if n.url == "" {
		n.log.Info("booster assigned",
			zap.Uint("orderID", orderID),
			zap.Uint("customerID", customerID),
			zap.Uint("boosterID", boosterID),
		)
		return nil
	}

	body, err := json.Marshal(assignedEvent{
		Event:      "booster_assigned",
		OrderID:    orderID,
		CustomerID: customerID,
		BoosterID:  boosterID,
	})
	if err != nil {
		return fmt.Errorf("failed marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed send event: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook answered %s", resp.Status)
	}

	return nil
}
