package ports

import (
	"context"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/post-service/internal/core/domain"
)

type PostRepository interface {
	// Save insère le post et renseigne son ID (RETURNING id)
	Save(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, postID int64) (*domain.Post, error)

	// Lectures keyset : au plus limit lignes admises par le curseur,
	// triées (created_at DESC, id DESC). Le service sur-demande d'une
	// ligne pour détecter la page suivante.
	List(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID int64, cursor pagination.Cursor, limit int) ([]*domain.Post, error)
}

type EventPublisher interface {
	PublishPostCreated(ctx context.Context, post *domain.Post) error
}
