package ports

import (
	"context"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
)

// --- DRIVEN (Ce dont le service a besoin) ---

// PostReader lit une tranche keyset chez la source "posts".
// FetchPage retourne au plus limit lignes (le service sur-demande d'une
// ligne pour détecter la suite), triées (created_at DESC, id DESC).
type PostReader interface {
	FetchPage(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Post, error)
	Liked(ctx context.Context, viewerID, postID int64) (bool, error)
}

type ArticleReader interface {
	FetchPage(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Article, error)
	Liked(ctx context.Context, viewerID, articleID int64) (bool, error)
}

// UserDirectory résout un auteur. (nil, nil) signifie "inconnu" :
// l'appelant applique le repli UnknownAuthor.
type UserDirectory interface {
	GetAuthor(ctx context.Context, userID int64) (*domain.Author, error)
}
