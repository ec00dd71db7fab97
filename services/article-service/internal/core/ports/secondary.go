package ports

import (
	"context"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/article-service/internal/core/domain"
)

type ArticleRepository interface {
	Save(ctx context.Context, article *domain.Article) error
	FindByID(ctx context.Context, articleID int64) (*domain.Article, error)

	// Keyset (created_at DESC, id DESC), au plus limit lignes
	List(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Article, error)
	ListByAuthor(ctx context.Context, authorID int64, cursor pagination.Cursor, limit int) ([]*domain.Article, error)
}

type EventPublisher interface {
	PublishArticleCreated(ctx context.Context, article *domain.Article) error
}
