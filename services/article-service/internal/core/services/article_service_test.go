package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/article-service/internal/core/domain"
)

type fakeRepo struct {
	articles []*domain.Article
	nextID   int64
}

func (f *fakeRepo) Save(_ context.Context, a *domain.Article) error {
	f.nextID++
	a.ID = f.nextID
	// Insertion en tête : les fixtures arrivent déjà du plus ancien au
	// plus récent, on garde donc l'ordre (created_at DESC, id DESC).
	f.articles = append([]*domain.Article{a}, f.articles...)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*domain.Article, error) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (f *fakeRepo) List(_ context.Context, cursor pagination.Cursor, limit int) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range f.articles {
		if !cursor.Admits(a.CreatedAt, a.ID) {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByAuthor(ctx context.Context, authorID int64, cursor pagination.Cursor, limit int) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range f.articles {
		if a.AuthorID != authorID || !cursor.Admits(a.CreatedAt, a.ID) {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type nopPublisher struct{}

func (nopPublisher) PublishArticleCreated(context.Context, *domain.Article) error { return nil }

func TestCreateArticleValidation(t *testing.T) {
	svc := NewArticleService(&fakeRepo{}, nopPublisher{})

	_, err := svc.CreateArticle(context.Background(), 1, "", "corps")
	require.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = svc.CreateArticle(context.Background(), 1, "titre", "")
	require.ErrorIs(t, err, domain.ErrEmptyContent)

	a, err := svc.CreateArticle(context.Background(), 1, "titre", "corps")
	require.NoError(t, err)
	require.NotZero(t, a.ID)
}

func TestListArticlesWalk(t *testing.T) {
	repo := &fakeRepo{}
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Save(context.Background(), &domain.Article{
			AuthorID:  1,
			Title:     "t",
			Content:   "c",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	svc := NewArticleService(repo, nopPublisher{})

	first, err := svc.ListArticles(context.Background(), pagination.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, first.Items, 10)
	require.True(t, first.HasMore)

	second, err := svc.ListArticles(context.Background(), pagination.Query{Size: 10, Cursor: *first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Items, 5)
	require.False(t, second.HasMore)
	require.Nil(t, second.NextCursor)
}
