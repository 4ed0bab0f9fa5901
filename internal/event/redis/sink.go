package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github-task-bridge/internal/event"
	"github-task-bridge/internal/model"
	pkgLog "github-task-bridge/pkg/log"
)

// Sink publishes domain events as JSON on a Redis pub/sub channel.
// Automation subscribers listen on the same channel.
type Sink struct {
	client  *redis.Client
	channel string
	l       pkgLog.Logger
}

func NewSink(client *redis.Client, channel string, l pkgLog.Logger) event.Sink {
	return &Sink{
		client:  client,
		channel: channel,
		l:       l,
	}
}

func (s *Sink) Emit(ctx context.Context, ev model.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", ev.Kind, err)
	}

	if err := s.client.Publish(ctx, s.channel, body).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", ev.Kind, err)
	}

	s.l.Infof(ctx, "event: published %s (id=%s, project=%d)", ev.Kind, ev.ID, ev.ProjectID)
	return nil
}
