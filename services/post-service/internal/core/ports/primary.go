package ports

import (
	"context"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/post-service/internal/core/domain"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID int64, content string) (*domain.Post, error)
	GetPost(ctx context.Context, postID int64) (*domain.Post, error)

	// 👇 Lectures paginées (keyset)
	ListPosts(ctx context.Context, q pagination.Query) (pagination.Page[*domain.Post], error)
	ListPostsByAuthor(ctx context.Context, authorID int64, q pagination.Query) (pagination.Page[*domain.Post], error)
}
