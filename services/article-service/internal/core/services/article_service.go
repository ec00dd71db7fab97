package services

import (
	"context"
	"log/slog"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/article-service/internal/core/domain"
	"github.com/maelferrand/brume/services/article-service/internal/core/ports"
)

type service struct {
	repo      ports.ArticleRepository
	publisher ports.EventPublisher
}

func NewArticleService(repo ports.ArticleRepository, pub ports.EventPublisher) ports.ArticleService {
	return &service{repo: repo, publisher: pub}
}

func (s *service) CreateArticle(ctx context.Context, authorID int64, title, content string) (*domain.Article, error) {
	article, err := domain.NewArticle(authorID, title, content)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, article); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishArticleCreated(ctx, article); err != nil {
		slog.Error("Failed to publish article.created", "article_id", article.ID, "error", err)
	}

	return article, nil
}

func (s *service) GetArticle(ctx context.Context, articleID int64) (*domain.Article, error) {
	return s.repo.FindByID(ctx, articleID)
}

// Sur-demande d'une ligne : l'excédent signale la page suivante.
func (s *service) ListArticles(ctx context.Context, q pagination.Query) (pagination.Page[*domain.Article], error) {
	q = q.Normalize()

	rows, err := s.repo.List(ctx, q.Cursor, q.Size+1)
	if err != nil {
		return pagination.Page[*domain.Article]{}, err
	}

	return pagination.Paginate(rows, q.Size, articleCursor), nil
}

func (s *service) ListArticlesByAuthor(ctx context.Context, authorID int64, q pagination.Query) (pagination.Page[*domain.Article], error) {
	q = q.Normalize()

	rows, err := s.repo.ListByAuthor(ctx, authorID, q.Cursor, q.Size+1)
	if err != nil {
		return pagination.Page[*domain.Article]{}, err
	}

	return pagination.Paginate(rows, q.Size, articleCursor), nil
}

func articleCursor(a *domain.Article) pagination.Cursor {
	return pagination.At(a.CreatedAt, a.ID)
}
