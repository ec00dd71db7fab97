package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
)

var baseTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type fakePostReader struct {
	rows       []*domain.Post
	fetchErr   error
	likedErr   error
	liked      map[[2]int64]bool // (viewerID, postID)
	likedCalls atomic.Int64
}

func (f *fakePostReader) FetchPage(_ context.Context, cursor pagination.Cursor, limit int) ([]*domain.Post, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []*domain.Post
	for _, p := range f.rows {
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

func (f *fakePostReader) Liked(_ context.Context, viewerID, postID int64) (bool, error) {
	f.likedCalls.Add(1)
	if f.likedErr != nil {
		return false, f.likedErr
	}
	return f.liked[[2]int64{viewerID, postID}], nil
}

type fakeArticleReader struct {
	rows     []*domain.Article
	fetchErr error
}

func (f *fakeArticleReader) FetchPage(_ context.Context, cursor pagination.Cursor, limit int) ([]*domain.Article, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []*domain.Article
	for _, a := range f.rows {
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

func (f *fakeArticleReader) Liked(context.Context, int64, int64) (bool, error) {
	return false, nil
}

type fakeDirectory struct {
	authors map[int64]*domain.Author
	err     error
	block   chan struct{} // si non-nil, GetAuthor attend le contexte
}

func (f *fakeDirectory) GetAuthor(ctx context.Context, userID int64) (*domain.Author, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.authors[userID], nil
}

// posts aux minutes paires, articles aux minutes impaires : la fusion
// attendue est un parfait entrelacement.
func fixtures(nPosts, nArticles int) (*fakePostReader, *fakeArticleReader) {
	posts := &fakePostReader{liked: map[[2]int64]bool{}}
	for i := 0; i < nPosts; i++ {
		posts.rows = append(posts.rows, &domain.Post{
			ID:        int64(1000 - i),
			AuthorID:  1,
			Content:   "post",
			CreatedAt: baseTime.Add(-time.Duration(2*i) * time.Minute),
		})
	}
	articles := &fakeArticleReader{}
	for i := 0; i < nArticles; i++ {
		articles.rows = append(articles.rows, &domain.Article{
			ID:        int64(2000 - i),
			AuthorID:  2,
			Title:     "titre",
			Content:   "article",
			CreatedAt: baseTime.Add(-time.Duration(2*i+1) * time.Minute),
		})
	}
	return posts, articles
}

func directory() *fakeDirectory {
	return &fakeDirectory{authors: map[int64]*domain.Author{
		1: {ID: 1, Login: "alice", Name: "Alice", Surname: "Martin"},
		2: {ID: 2, Login: "bob", Name: "Bob", Surname: "Durand"},
	}}
}

func TestGetFeedMergesChronologically(t *testing.T) {
	posts, articles := fixtures(3, 3)
	svc := NewFeedService(posts, articles, directory())

	feed, err := svc.GetFeed(context.Background(), 9, 0,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, feed.Items, 6)

	// Entrelacement post/article, ordre anté-chronologique strict
	for i, it := range feed.Items {
		if i%2 == 0 {
			require.NotNil(t, it.Post, "item %d devrait être un post", i)
		} else {
			require.NotNil(t, it.Article, "item %d devrait être un article", i)
		}
		if i > 0 {
			require.True(t, feed.Items[i-1].CreatedAt().After(it.CreatedAt()))
		}
	}

	require.False(t, feed.PostPage.HasMore)
	require.False(t, feed.ArticlePage.HasMore)
}

func TestGetFeedIndependentCursors(t *testing.T) {
	// 15 posts mais 3 articles : la source articles s'épuise dès la
	// première page, les posts continuent seuls.
	posts, articles := fixtures(15, 3)
	svc := NewFeedService(posts, articles, directory())

	first, err := svc.GetFeed(context.Background(), 9, 0,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, first.Items, 13)
	require.True(t, first.PostPage.HasMore)
	require.NotNil(t, first.PostPage.NextCursor)
	require.False(t, first.ArticlePage.HasMore)
	require.Nil(t, first.ArticlePage.NextCursor)

	second, err := svc.GetFeed(context.Background(), 9, 0,
		pagination.Query{Size: 10, Cursor: *first.PostPage.NextCursor},
		pagination.Query{Size: 10})
	require.NoError(t, err)

	// La page 2 des posts reprend après le curseur : 5 posts restants.
	// Les articles repartent du début (curseur indépendant, non fourni).
	var postCount, articleCount int
	for _, it := range second.Items {
		if it.Post != nil {
			postCount++
		} else {
			articleCount++
		}
	}
	require.Equal(t, 5, postCount)
	require.Equal(t, 3, articleCount)
	require.False(t, second.PostPage.HasMore)
}

func TestGetFeedEnrichment(t *testing.T) {
	posts, articles := fixtures(2, 1)
	posts.liked[[2]int64{9, 1000}] = true
	svc := NewFeedService(posts, articles, directory())

	feed, err := svc.GetFeed(context.Background(), 9, 9,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.NoError(t, err)

	first := feed.Items[0].Post
	require.Equal(t, "alice", first.Author.Login)
	require.True(t, first.LikedByMe)

	second := feed.Items[1].Article
	require.Equal(t, "bob", second.Author.Login)
	require.False(t, second.LikedByMe)
}

func TestGetFeedAnonymousSkipsLikes(t *testing.T) {
	posts, articles := fixtures(3, 0)
	svc := NewFeedService(posts, articles, directory())

	feed, err := svc.GetFeed(context.Background(), 9, 0,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.NoError(t, err)
	require.Zero(t, posts.likedCalls.Load())
	for _, it := range feed.Items {
		require.False(t, it.Post.LikedByMe)
	}
}

func TestGetFeedAuthorFallback(t *testing.T) {
	posts, articles := fixtures(1, 1)
	dir := &fakeDirectory{err: errors.New("directory down")}
	svc := NewFeedService(posts, articles, dir)

	feed, err := svc.GetFeed(context.Background(), 9, 0,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.NoError(t, err, "la panne de l'annuaire ne doit pas faire tomber la page")
	require.Equal(t, domain.UnknownAuthor(1), feed.Items[0].Post.Author)
	require.Equal(t, domain.UnknownAuthor(2), feed.Items[1].Article.Author)
}

func TestGetFeedUnknownAuthorKeepsCursor(t *testing.T) {
	// La pagination est calculée avant l'enrichissement : un annuaire
	// en panne ne change ni la taille de page ni le curseur.
	posts, articles := fixtures(12, 0)
	dir := &fakeDirectory{err: errors.New("directory down")}
	svc := NewFeedService(posts, articles, dir)

	feed, err := svc.GetFeed(context.Background(), 9, 0,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, feed.Items, 10)
	require.True(t, feed.PostPage.HasMore)
	require.EqualValues(t, 991, feed.PostPage.NextCursor.ID)
}

func TestGetFeedLikeFallback(t *testing.T) {
	posts, articles := fixtures(2, 0)
	posts.likedErr = errors.New("likes table unavailable")
	svc := NewFeedService(posts, articles, directory())

	feed, err := svc.GetFeed(context.Background(), 9, 9,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.NoError(t, err)
	for _, it := range feed.Items {
		require.False(t, it.Post.LikedByMe)
	}
}

func TestGetFeedSourceFailure(t *testing.T) {
	posts, articles := fixtures(3, 3)
	articles.fetchErr = errors.New("articles db down")
	svc := NewFeedService(posts, articles, directory())

	_, err := svc.GetFeed(context.Background(), 9, 0,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.ErrorContains(t, err, "articles db down")
}

func TestGetFeedCancellation(t *testing.T) {
	posts, articles := fixtures(3, 0)
	dir := directory()
	dir.block = make(chan struct{}) // jamais fermé : seul ctx.Done() libère
	svc := NewFeedService(posts, articles, dir)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := svc.GetFeed(ctx, 9, 0,
		pagination.Query{Size: 10}, pagination.Query{Size: 10})
	require.ErrorIs(t, err, context.Canceled)
}
