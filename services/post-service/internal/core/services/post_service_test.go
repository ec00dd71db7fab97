package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/post-service/internal/core/domain"
)

// fakeRepo simule Postgres : tri (created_at DESC, id DESC) + LIMIT.
type fakeRepo struct {
	posts   []*domain.Post
	nextID  int64
	saveErr error
}

func (f *fakeRepo) Save(_ context.Context, post *domain.Post) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.nextID++
	post.ID = f.nextID
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, postID int64) (*domain.Post, error) {
	for _, p := range f.posts {
		if p.ID == postID {
			return p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (f *fakeRepo) List(_ context.Context, cursor pagination.Cursor, limit int) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range f.sorted() {
		if !cursor.Admits(p.CreatedAt, p.ID) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByAuthor(ctx context.Context, authorID int64, cursor pagination.Cursor, limit int) ([]*domain.Post, error) {
	all, _ := f.List(ctx, cursor, len(f.posts))
	var out []*domain.Post
	for _, p := range all {
		if p.AuthorID != authorID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) sorted() []*domain.Post {
	out := append([]*domain.Post(nil), f.posts...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			a, b := out[i], out[j]
			if b.CreatedAt.After(a.CreatedAt) || (b.CreatedAt.Equal(a.CreatedAt) && b.ID > a.ID) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

type fakePublisher struct {
	published []*domain.Post
	err       error
}

func (f *fakePublisher) PublishPostCreated(_ context.Context, post *domain.Post) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, post)
	return nil
}

func seed(t *testing.T, repo *fakeRepo, n int, authorID int64) {
	t.Helper()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Save(context.Background(), &domain.Post{
			AuthorID:  authorID,
			Content:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
}

func TestCreatePost(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{}
	svc := NewPostService(repo, pub)

	post, err := svc.CreatePost(context.Background(), 1, "premier post")
	require.NoError(t, err)
	require.EqualValues(t, 1, post.ID)
	require.EqualValues(t, 1, post.AuthorID)
	require.Len(t, pub.published, 1)
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(&fakeRepo{}, &fakePublisher{})

	_, err := svc.CreatePost(context.Background(), 1, "")
	require.ErrorIs(t, err, domain.ErrEmptyContent)

	_, err = svc.CreatePost(context.Background(), 1, strings.Repeat("a", domain.MaxContentLength+1))
	require.ErrorIs(t, err, domain.ErrContentTooLong)
}

func TestCreatePostSurvivesPublishFailure(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{err: errors.New("nats down")}
	svc := NewPostService(repo, pub)

	post, err := svc.CreatePost(context.Background(), 1, "contenu")
	require.NoError(t, err, "l'échec de publication ne doit pas faire échouer la création")
	require.NotZero(t, post.ID)
}

func TestListPostsPagination(t *testing.T) {
	repo := &fakeRepo{}
	seed(t, repo, 15, 1)
	svc := NewPostService(repo, &fakePublisher{})

	first, err := svc.ListPosts(context.Background(), pagination.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, first.Items, 10)
	require.True(t, first.HasMore)
	require.NotNil(t, first.NextCursor)

	// Ordre anté-chronologique
	for i := 1; i < len(first.Items); i++ {
		require.False(t, first.Items[i].CreatedAt.After(first.Items[i-1].CreatedAt))
	}

	second, err := svc.ListPosts(context.Background(), pagination.Query{Size: 10, Cursor: *first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Items, 5)
	require.False(t, second.HasMore)
	require.Nil(t, second.NextCursor)

	seen := map[int64]bool{}
	for _, p := range append(first.Items, second.Items...) {
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
	require.Len(t, seen, 15)
}

func TestListPostsDefaultPageSize(t *testing.T) {
	repo := &fakeRepo{}
	seed(t, repo, 12, 1)
	svc := NewPostService(repo, &fakePublisher{})

	page, err := svc.ListPosts(context.Background(), pagination.Query{Size: 0})
	require.NoError(t, err)
	require.Len(t, page.Items, pagination.DefaultPageSize)
	require.True(t, page.HasMore)
}

func TestListPostsByAuthorFilters(t *testing.T) {
	repo := &fakeRepo{}
	seed(t, repo, 5, 1)
	seed(t, repo, 3, 2)
	svc := NewPostService(repo, &fakePublisher{})

	page, err := svc.ListPostsByAuthor(context.Background(), 2, pagination.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.False(t, page.HasMore)
	for _, p := range page.Items {
		require.EqualValues(t, 2, p.AuthorID)
	}
}
