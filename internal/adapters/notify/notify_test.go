package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/playmixer/boosthub/internal/adapters/notify"
	"github.com/stretchr/testify/assert"
)

func TestBoosterAssigned(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.New(&notify.Config{WebhookURL: srv.URL, Timeout: time.Second})

	err := n.BoosterAssigned(context.Background(), 5, 100, 7)
	assert.NoError(t, err)
	assert.Equal(t, "booster_assigned", got["event"])
	assert.Equal(t, float64(5), got["order_id"])
	assert.Equal(t, float64(100), got["customer_id"])
	assert.Equal(t, float64(7), got["booster_id"])
}

func TestBoosterAssignedWebhookError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := notify.New(&notify.Config{WebhookURL: srv.URL, Timeout: time.Second})

	err := n.BoosterAssigned(context.Background(), 5, 100, 7)
	assert.Error(t, err)
}

func TestBoosterAssignedNoWebhook(t *testing.T) {
	n := notify.New(&notify.Config{Timeout: time.Second})
	assert.NoError(t, n.BoosterAssigned(context.Background(), 5, 100, 7))
}
