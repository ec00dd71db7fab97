package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	articlev1 "github.com/maelferrand/brume/gen/article/v1"
	"github.com/maelferrand/brume/pkg/authctx"
	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/article-service/internal/core/domain"
	"github.com/maelferrand/brume/services/article-service/internal/core/ports"
)

type Server struct {
	articlev1.UnimplementedArticleServiceServer
	service ports.ArticleService
}

func NewServer(service ports.ArticleService) *Server {
	return &Server{service: service}
}

func (s *Server) Register(grpcServer *grpc.Server) {
	articlev1.RegisterArticleServiceServer(grpcServer, s)
}

func (s *Server) CreateArticle(ctx context.Context, req *articlev1.CreateArticleRequest) (*articlev1.CreateArticleResponse, error) {
	principal, ok := authctx.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}

	article, err := s.service.CreateArticle(ctx, principal.UserID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyTitle),
			errors.Is(err, domain.ErrEmptyContent),
			errors.Is(err, domain.ErrTitleTooLong),
			errors.Is(err, domain.ErrContentTooLong):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		slog.Error("Failed to create article", "error", err)
		return nil, status.Error(codes.Internal, "failed to create article")
	}

	return &articlev1.CreateArticleResponse{Article: mapDomainToProto(article)}, nil
}

func (s *Server) GetArticle(ctx context.Context, req *articlev1.GetArticleRequest) (*articlev1.GetArticleResponse, error) {
	if req.ArticleId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "article_id required")
	}

	article, err := s.service.GetArticle(ctx, req.ArticleId)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return nil, status.Error(codes.NotFound, "article not found")
		}
		slog.Error("Failed to fetch article", "article_id", req.ArticleId, "error", err)
		return nil, status.Error(codes.Internal, "failed to fetch article")
	}
	return &articlev1.GetArticleResponse{Article: mapDomainToProto(article)}, nil
}

func (s *Server) GetArticles(ctx context.Context, req *articlev1.GetArticlesRequest) (*articlev1.GetArticlesResponse, error) {
	page, err := s.service.ListArticles(ctx, mapPageRequest(req.Pagination))
	if err != nil {
		slog.Error("Failed to list articles", "error", err)
		return nil, status.Error(codes.Internal, "failed to list articles")
	}

	return &articlev1.GetArticlesResponse{
		Articles: mapArticles(page.Items),
		PageInfo: mapPageInfo(page.Info()),
	}, nil
}

func (s *Server) GetArticlesByUserId(ctx context.Context, req *articlev1.GetArticlesByUserIdRequest) (*articlev1.GetArticlesResponse, error) {
	if req.UserId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id required")
	}

	page, err := s.service.ListArticlesByAuthor(ctx, req.UserId, mapPageRequest(req.Pagination))
	if err != nil {
		slog.Error("Failed to list articles by author", "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "failed to list articles")
	}

	return &articlev1.GetArticlesResponse{
		Articles: mapArticles(page.Items),
		PageInfo: mapPageInfo(page.Info()),
	}, nil
}

func mapPageRequest(pr *articlev1.PageRequest) pagination.Query {
	if pr == nil {
		return pagination.Query{}
	}
	q := pagination.Query{Size: int(pr.PageSize)}
	if pr.CursorCreatedAt != nil && pr.CursorId > 0 {
		q.Cursor = pagination.At(pr.CursorCreatedAt.AsTime(), pr.CursorId)
	}
	return q
}

func mapPageInfo(info pagination.Info) *articlev1.PageInfo {
	out := &articlev1.PageInfo{HasMore: info.HasMore}
	if info.NextCursor != nil {
		out.NextCursorCreatedAt = timestamppb.New(*info.NextCursor.CreatedAt)
		out.NextCursorId = info.NextCursor.ID
	}
	return out
}

func mapArticles(articles []*domain.Article) []*articlev1.Article {
	out := make([]*articlev1.Article, len(articles))
	for i, a := range articles {
		out[i] = mapDomainToProto(a)
	}
	return out
}

func mapDomainToProto(a *domain.Article) *articlev1.Article {
	if a == nil {
		return nil
	}
	return &articlev1.Article{
		Id:        a.ID,
		AuthorId:  a.AuthorID,
		Title:     a.Title,
		Content:   a.Content,
		Likes:     a.Counters.Likes,
		Shares:    a.Counters.Shares,
		Comments:  a.Counters.Comments,
		Views:     a.Counters.Views,
		CreatedAt: timestamppb.New(a.CreatedAt),
	}
}
