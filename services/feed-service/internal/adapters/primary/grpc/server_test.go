package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	feedv1 "github.com/maelferrand/brume/gen/feed/v1"
	"github.com/maelferrand/brume/pkg/authctx"
	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
)

type stubService struct {
	lastViewerID int64
	lastPostQ    pagination.Query
	feed         *domain.Feed
	err          error
}

func (s *stubService) GetFeed(_ context.Context, userID, viewerID int64, postQ, articleQ pagination.Query) (*domain.Feed, error) {
	s.lastViewerID = viewerID
	s.lastPostQ = postQ
	if s.err != nil {
		return nil, s.err
	}
	return s.feed, nil
}

func TestGetFeedByUserIdValidation(t *testing.T) {
	srv := NewServer(&stubService{})

	_, err := srv.GetFeedByUserId(context.Background(), &feedv1.GetFeedByUserIdRequest{UserId: 0})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetFeedByUserIdMapsResponse(t *testing.T) {
	created := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	next := created.Add(-time.Hour)
	stub := &stubService{feed: &domain.Feed{
		Items: []domain.FeedItem{
			{Post: &domain.EnrichedPost{
				Post:      domain.Post{ID: 1, Content: "p", CreatedAt: created},
				Author:    domain.Author{ID: 7, Login: "alice"},
				LikedByMe: true,
			}},
			{Article: &domain.EnrichedArticle{
				Article: domain.Article{ID: 2, Title: "t", Content: "a", CreatedAt: created.Add(-time.Minute)},
				Author:  domain.Author{ID: 8, Login: "bob"},
			}},
		},
		PostPage:    pagination.Info{HasMore: true, NextCursor: &pagination.Cursor{CreatedAt: &next, ID: 1}},
		ArticlePage: pagination.Info{},
	}}
	srv := NewServer(stub)

	resp, err := srv.GetFeedByUserId(context.Background(), &feedv1.GetFeedByUserIdRequest{UserId: 9})
	require.NoError(t, err)
	require.Len(t, resp.Feed, 2)

	post := resp.Feed[0].GetPost()
	require.NotNil(t, post)
	require.EqualValues(t, 1, post.Id)
	require.Equal(t, "alice", post.Author.Login)
	require.True(t, post.LikedByMe)

	article := resp.Feed[1].GetArticle()
	require.NotNil(t, article)
	require.Equal(t, "t", article.Title)

	require.True(t, resp.PostPageInfo.HasMore)
	require.EqualValues(t, 1, resp.PostPageInfo.NextCursorId)
	require.Equal(t, next, resp.PostPageInfo.NextCursorCreatedAt.AsTime())
	require.False(t, resp.ArticlePageInfo.HasMore)
	require.Nil(t, resp.ArticlePageInfo.NextCursorCreatedAt)
}

func TestGetFeedByUserIdViewer(t *testing.T) {
	stub := &stubService{feed: &domain.Feed{}}
	srv := NewServer(stub)

	// Anonyme
	_, err := srv.GetFeedByUserId(context.Background(), &feedv1.GetFeedByUserIdRequest{UserId: 9})
	require.NoError(t, err)
	require.Zero(t, stub.lastViewerID)

	// Authentifié
	ctx := authctx.WithPrincipal(context.Background(), authctx.Principal{UserID: 42})
	_, err = srv.GetFeedByUserId(ctx, &feedv1.GetFeedByUserIdRequest{UserId: 9})
	require.NoError(t, err)
	require.EqualValues(t, 42, stub.lastViewerID)
}

func TestGetFeedByUserIdPartialCursor(t *testing.T) {
	stub := &stubService{feed: &domain.Feed{}}
	srv := NewServer(stub)

	// Date sans id : le curseur est ignoré, on repart du début
	_, err := srv.GetFeedByUserId(context.Background(), &feedv1.GetFeedByUserIdRequest{
		UserId: 9,
		PostPagination: &feedv1.PageRequest{
			PageSize:        10,
			CursorCreatedAt: timestamppb.New(time.Now()),
		},
	})
	require.NoError(t, err)
	require.True(t, stub.lastPostQ.Cursor.IsStart())
}
