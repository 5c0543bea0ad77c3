// adapters/redis/redis_test.go
package redis

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestFeed_Channel(t *testing.T) {
	tests := []struct {
		prefix string
		topic  string
		want   string
	}{
		{prefix: "", topic: "orders", want: "orders"},
		{prefix: "kiosk", topic: "orders", want: "kiosk:orders"},
		{prefix: "kiosk", topic: "contact", want: "kiosk:contact"},
	}
	for _, tt := range tests {
		f := &Feed{prefix: tt.prefix}
		if got := f.Channel(tt.topic); got != tt.want {
			t.Errorf("Channel(%q) with prefix %q = %q, want %q", tt.topic, tt.prefix, got, tt.want)
		}
	}
}

// Needs a live server; set REDIS_ADDR to run it.
func TestFeed_PublishSubscribe(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed := NewFeed(addr, os.Getenv("REDIS_USERNAME"), os.Getenv("REDIS_PASSWORD"), 0, "kiosk-test")
	defer feed.Close()
	if err := feed.Ping(ctx); err != nil {
		t.Fatalf("failed to connect to Redis: %v", err)
	}

	sub := feed.Subscribe(ctx, "orders")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("Subscribe() confirmation error: %v", err)
	}

	payload := map[string]interface{}{"username": "admin", "total": 12}
	if err := feed.Publish(ctx, "orders", payload); err != nil {
		t.Fatalf("Publish() unexpected error: %v", err)
	}

	msg, err := sub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("ReceiveMessage() unexpected error: %v", err)
	}
	if msg.Channel != "kiosk-test:orders" {
		t.Errorf("channel = %q, want %q", msg.Channel, "kiosk-test:orders")
	}
	var got map[string]interface{}
	if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got["username"] != "admin" || got["total"] != float64(12) {
		t.Errorf("payload = %v, want admin/12", got)
	}
}
