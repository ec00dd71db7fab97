package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	feedv1 "github.com/maelferrand/brume/gen/feed/v1"
	"github.com/maelferrand/brume/pkg/authctx"
	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
	"github.com/maelferrand/brume/services/feed-service/internal/core/ports"
)

type Server struct {
	feedv1.UnimplementedFeedServiceServer
	service ports.FeedService
}

func NewServer(service ports.FeedService) *Server {
	return &Server{service: service}
}

func (s *Server) Register(grpcServer *grpc.Server) {
	feedv1.RegisterFeedServiceServer(grpcServer, s)
}

func (s *Server) GetFeedByUserId(ctx context.Context, req *feedv1.GetFeedByUserIdRequest) (*feedv1.GetFeedByUserIdResponse, error) {
	if req.UserId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	// L'appelant authentifié pilote LikedByMe ; anonyme -> jamais liké
	var viewerID int64
	if principal, ok := authctx.FromContext(ctx); ok {
		viewerID = principal.UserID
	}

	feed, err := s.service.GetFeed(ctx, req.UserId, viewerID,
		mapPageRequest(req.PostPagination),
		mapPageRequest(req.ArticlePagination),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, status.FromContextError(ctx.Err()).Err()
		}
		slog.Error("Failed to build feed", "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "failed to fetch feed")
	}

	// Mapping Domain -> Proto
	elements := make([]*feedv1.FeedElement, len(feed.Items))
	for i, item := range feed.Items {
		if item.Post != nil {
			elements[i] = &feedv1.FeedElement{Content: &feedv1.FeedElement_Post{Post: mapPost(item.Post)}}
		} else {
			elements[i] = &feedv1.FeedElement{Content: &feedv1.FeedElement_Article{Article: mapArticle(item.Article)}}
		}
	}

	return &feedv1.GetFeedByUserIdResponse{
		Feed:            elements,
		PostPageInfo:    mapPageInfo(feed.PostPage),
		ArticlePageInfo: mapPageInfo(feed.ArticlePage),
	}, nil
}

// --- HELPERS (Mappers) ---

func mapPageRequest(pr *feedv1.PageRequest) pagination.Query {
	if pr == nil {
		return pagination.Query{}
	}
	q := pagination.Query{Size: int(pr.PageSize)}
	// Curseur incomplet -> première page
	if pr.CursorCreatedAt != nil && pr.CursorId > 0 {
		q.Cursor = pagination.At(pr.CursorCreatedAt.AsTime(), pr.CursorId)
	}
	return q
}

func mapPageInfo(info pagination.Info) *feedv1.PageInfo {
	out := &feedv1.PageInfo{HasMore: info.HasMore}
	if info.NextCursor != nil {
		out.NextCursorCreatedAt = timestamppb.New(*info.NextCursor.CreatedAt)
		out.NextCursorId = info.NextCursor.ID
	}
	return out
}

func mapAuthor(a domain.Author) *feedv1.Author {
	return &feedv1.Author{
		Id:      a.ID,
		Login:   a.Login,
		Name:    a.Name,
		Surname: a.Surname,
	}
}

func mapPost(p *domain.EnrichedPost) *feedv1.FeedPost {
	return &feedv1.FeedPost{
		Id:        p.ID,
		Author:    mapAuthor(p.Author),
		Content:   p.Content,
		Likes:     p.Counters.Likes,
		Shares:    p.Counters.Shares,
		Comments:  p.Counters.Comments,
		Views:     p.Counters.Views,
		LikedByMe: p.LikedByMe,
		CreatedAt: timestamppb.New(p.CreatedAt),
	}
}

func mapArticle(a *domain.EnrichedArticle) *feedv1.FeedArticle {
	return &feedv1.FeedArticle{
		Id:        a.ID,
		Author:    mapAuthor(a.Author),
		Title:     a.Title,
		Content:   a.Content,
		Likes:     a.Counters.Likes,
		Shares:    a.Counters.Shares,
		Comments:  a.Counters.Comments,
		Views:     a.Counters.Views,
		LikedByMe: a.LikedByMe,
		CreatedAt: timestamppb.New(a.CreatedAt),
	}
}
