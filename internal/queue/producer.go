package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NotificationMessage is the hand-off to the mailer: delivery itself is the
// mailer's business, this service only records that a notification is due.
type NotificationMessage struct {
	AssignmentID int64
	ArticleID    int64
	EditorID     int64
	Message      *string
	Skip         bool
}

type Producer interface {
	Enqueue(ctx context.Context, msg NotificationMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg NotificationMessage) error {
	fields := map[string]any{
		"assignment_id": msg.AssignmentID,
		"article_id":    msg.ArticleID,
		"editor_id":     msg.EditorID,
		"skip":          msg.Skip,
	}

	if msg.Message != nil && *msg.Message != "" {
		fields["message"] = *msg.Message
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued notification", "assignment_id", msg.AssignmentID, "article_id", msg.ArticleID, "editor_id", msg.EditorID, "skip", msg.Skip)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
