package services

import (
	"context"
	"log/slog"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/post-service/internal/core/domain"
	"github.com/maelferrand/brume/services/post-service/internal/core/ports"
)

type service struct {
	repo      ports.PostRepository
	publisher ports.EventPublisher
}

func NewPostService(repo ports.PostRepository, pub ports.EventPublisher) ports.PostService {
	return &service{repo: repo, publisher: pub}
}

func (s *service) CreatePost(ctx context.Context, authorID int64, content string) (*domain.Post, error) {
	post, err := domain.NewPost(authorID, content)
	if err != nil {
		return nil, err
	}

	// 1. Sauvegarde DB (Source of Truth)
	if err := s.repo.Save(ctx, post); err != nil {
		return nil, err
	}

	// 2. Publication Événement (Fan-out Trigger)
	// Note: En architecture experte "Critique", on utiliserait le pattern "Transactional Outbox"
	// Pour l'instant, un appel direct suffit, mais gardez l'Outbox en tête pour la v2.
	if err := s.publisher.PublishPostCreated(ctx, post); err != nil {
		// La donnée est sauvée : on logge, mais on ne fait pas échouer la requête.
		slog.Error("Failed to publish post.created", "post_id", post.ID, "error", err)
	}

	return post, nil
}

func (s *service) GetPost(ctx context.Context, postID int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, postID)
}

// ListPosts : flux global, pagination keyset.
// On demande pageSize+1 lignes au repo : la ligne excédentaire prouve
// l'existence d'une page suivante sans COUNT(*).
func (s *service) ListPosts(ctx context.Context, q pagination.Query) (pagination.Page[*domain.Post], error) {
	q = q.Normalize()

	rows, err := s.repo.List(ctx, q.Cursor, q.Size+1)
	if err != nil {
		return pagination.Page[*domain.Post]{}, err
	}

	return pagination.Paginate(rows, q.Size, postCursor), nil
}

func (s *service) ListPostsByAuthor(ctx context.Context, authorID int64, q pagination.Query) (pagination.Page[*domain.Post], error) {
	q = q.Normalize()

	rows, err := s.repo.ListByAuthor(ctx, authorID, q.Cursor, q.Size+1)
	if err != nil {
		return pagination.Page[*domain.Post]{}, err
	}

	return pagination.Paginate(rows, q.Size, postCursor), nil
}

func postCursor(p *domain.Post) pagination.Cursor {
	return pagination.At(p.CreatedAt, p.ID)
}
