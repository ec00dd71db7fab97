package eventbroker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/maelferrand/brume/services/article-service/internal/core/domain"
)

type NatsPublisher struct {
	nc *nats.Conn
}

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

type ArticleCreatedEvent struct {
	EventID   string    `json:"event_id"`
	ArticleID int64     `json:"article_id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *NatsPublisher) PublishArticleCreated(ctx context.Context, article *domain.Article) error {
	event := ArticleCreatedEvent{
		EventID:   uuid.New().String(),
		ArticleID: article.ID,
		AuthorID:  article.AuthorID,
		Title:     article.Title,
		CreatedAt: article.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling error: %w", err)
	}

	msg := &nats.Msg{
		Subject: "article.created",
		Data:    data,
		Header:  nats.Header{},
	}
	// Propagation du contexte de trace dans les headers NATS
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	slog.Info("📢 Publishing event", "topic", msg.Subject, "article_id", article.ID)

	return p.nc.PublishMsg(msg)
}
