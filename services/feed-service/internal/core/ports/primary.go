package ports

import (
	"context"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
)

// --- DRIVING (Ce que le service expose) ---

type FeedService interface {
	// GetFeed agrège la page suivante du feed de userID.
	// viewerID est l'appelant authentifié (0 si anonyme) : il pilote le
	// flag LikedByMe. Chaque source avance avec son propre curseur.
	GetFeed(ctx context.Context, userID, viewerID int64, postQ, articleQ pagination.Query) (*domain.Feed, error)
}
