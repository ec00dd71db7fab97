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

	"github.com/maelferrand/brume/services/post-service/internal/core/domain"
)

type NatsPublisher struct {
	nc *nats.Conn
}

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

// Structure de l'event (Contract implicite avec Feed-Service)
type PostCreatedEvent struct {
	EventID   string    `json:"event_id"` // uuid, pour l'idempotence côté consommateur
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
	Content   string    `json:"content"` // Snippet optionnel
	CreatedAt time.Time `json:"created_at"`
}

func (p *NatsPublisher) PublishPostCreated(ctx context.Context, post *domain.Post) error {
	event := PostCreatedEvent{
		EventID:   uuid.New().String(),
		PostID:    post.ID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling error: %w", err)
	}

	// Topic NATS
	msg := &nats.Msg{
		Subject: "post.created",
		Data:    data,
		Header:  nats.Header{},
	}
	// 👇 INJECTION DU TRACE ID DANS LES HEADERS NATS
	// Cela prend le contexte actuel (qui contient le TraceID du gRPC) et le met dans msg.Header
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	slog.Info("📢 Publishing event with trace context", "topic", msg.Subject, "post_id", post.ID)

	return p.nc.PublishMsg(msg)
}
