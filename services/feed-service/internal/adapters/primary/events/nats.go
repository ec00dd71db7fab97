package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/maelferrand/brume/services/feed-service/internal/adapters/secondary/cache"
)

// EventHandler garde le cache auteurs cohérent : quand un profil change
// côté user-service, la fiche cachée doit disparaître.
type EventHandler struct {
	authors *cache.AuthorCache
}

func NewEventHandler(authors *cache.AuthorCache) *EventHandler {
	return &EventHandler{authors: authors}
}

func (h *EventHandler) HandleUserUpdated(msg *nats.Msg) {
	// 1. EXTRACTION DU CONTEXTE DE TRACE depuis les headers NATS
	ctx := context.Background()
	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(msg.Header))

	tracer := otel.Tracer("feed-service")
	ctx, span := tracer.Start(ctx, "process_user_updated", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()

	type UserUpdatedEvent struct {
		EventID string `json:"event_id"`
		UserID  int64  `json:"user_id"`
	}

	var event UserUpdatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		span.RecordError(err)
		slog.Error("❌ Invalid event format", "error", err)
		return
	}

	slog.Info("📨 Feed Service received event", "subject", msg.Subject, "user_id", event.UserID)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := h.authors.Invalidate(ctx, event.UserID); err != nil {
		span.RecordError(err)
		slog.Error("❌ Author cache invalidation failed", "user_id", event.UserID, "error", err)
	}
}
