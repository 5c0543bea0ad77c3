// adapters/redis/redis.go
package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Feed publishes kiosk events as JSON on "<prefix>:<topic>" channels.
type Feed struct {
	client *redis.Client
	prefix string
}

func NewFeed(addr, username, password string, db int, prefix string) *Feed {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Feed{client: client, prefix: prefix}
}

func (f *Feed) Channel(topic string) string {
	if f.prefix == "" {
		return topic
	}
	return f.prefix + ":" + topic
}

func (f *Feed) Publish(ctx context.Context, topic string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, f.Channel(topic), data).Err()
}

// Subscribe listens on the given topics; the watch command reads the feed
// through it. Callers must Close the returned subscription.
func (f *Feed) Subscribe(ctx context.Context, topics ...string) *redis.PubSub {
	channels := make([]string, len(topics))
	for i, t := range topics {
		channels[i] = f.Channel(t)
	}
	return f.client.Subscribe(ctx, channels...)
}

func (f *Feed) Ping(ctx context.Context) error {
	return f.client.Ping(ctx).Err()
}

func (f *Feed) Close() error {
	return f.client.Close()
}
