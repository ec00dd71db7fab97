package ports

import (
	"context"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/article-service/internal/core/domain"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, authorID int64, title, content string) (*domain.Article, error)
	GetArticle(ctx context.Context, articleID int64) (*domain.Article, error)

	ListArticles(ctx context.Context, q pagination.Query) (pagination.Page[*domain.Article], error)
	ListArticlesByAuthor(ctx context.Context, authorID int64, q pagination.Query) (pagination.Page[*domain.Article], error)
}
