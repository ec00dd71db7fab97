package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
	"github.com/maelferrand/brume/services/feed-service/internal/core/ports"
)

// AuthorCache décore l'annuaire utilisateur avec un cache Redis court :
// une page de feed relit souvent les mêmes auteurs.
type AuthorCache struct {
	client *redis.Client
	inner  ports.UserDirectory
	ttl    time.Duration
}

func NewAuthorCache(client *redis.Client, inner ports.UserDirectory) *AuthorCache {
	return &AuthorCache{
		client: client,
		inner:  inner,
		ttl:    5 * time.Minute,
	}
}

func authorKey(userID int64) string {
	return fmt.Sprintf("author:%d", userID)
}

type authorDTO struct {
	ID      int64  `json:"id"`
	Login   string `json:"login"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (c *AuthorCache) GetAuthor(ctx context.Context, userID int64) (*domain.Author, error) {
	// 1. Lecture cache. Une panne Redis n'est jamais fatale : on passe
	// à l'annuaire.
	data, err := c.client.Get(ctx, authorKey(userID)).Bytes()
	if err == nil {
		var dto authorDTO
		if err := json.Unmarshal(data, &dto); err == nil {
			return &domain.Author{ID: dto.ID, Login: dto.Login, Name: dto.Name, Surname: dto.Surname}, nil
		}
		// Entrée corrompue : on la laisse expirer et on repart du réseau
	} else if err != redis.Nil {
		slog.Warn("Author cache read failed", "user_id", userID, "error", err)
	}

	// 2. Source de vérité
	author, err := c.inner.GetAuthor(ctx, userID)
	if err != nil || author == nil {
		return author, err
	}

	// 3. Remplissage (best-effort)
	if data, err := json.Marshal(authorDTO{
		ID: author.ID, Login: author.Login, Name: author.Name, Surname: author.Surname,
	}); err == nil {
		if err := c.client.Set(ctx, authorKey(userID), data, c.ttl).Err(); err != nil {
			slog.Warn("Author cache write failed", "user_id", userID, "error", err)
		}
	}

	return author, nil
}

// Invalidate retire une fiche du cache (profil modifié).
func (c *AuthorCache) Invalidate(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, authorKey(userID)).Err()
}
