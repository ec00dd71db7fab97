package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	postv1 "github.com/maelferrand/brume/gen/post/v1"
	"github.com/maelferrand/brume/pkg/authctx"
	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/post-service/internal/core/domain"
	"github.com/maelferrand/brume/services/post-service/internal/core/ports"
)

type Server struct {
	postv1.UnimplementedPostServiceServer
	service ports.PostService
}

func NewServer(service ports.PostService) *Server {
	return &Server{service: service}
}

func (s *Server) Register(grpcServer *grpc.Server) {
	postv1.RegisterPostServiceServer(grpcServer, s)
}

// --- COMMANDS (Write) ---

func (s *Server) CreatePost(ctx context.Context, req *postv1.CreatePostRequest) (*postv1.CreatePostResponse, error) {
	// L'auteur est l'appelant authentifié, jamais un champ de la requête.
	principal, ok := authctx.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}

	post, err := s.service.CreatePost(ctx, principal.UserID, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyContent) || errors.Is(err, domain.ErrContentTooLong) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		slog.Error("Failed to create post", "error", err)
		return nil, status.Error(codes.Internal, "failed to create post")
	}

	return &postv1.CreatePostResponse{
		Post: mapDomainToProto(post),
	}, nil
}

// --- QUERIES (Read) ---

func (s *Server) GetPost(ctx context.Context, req *postv1.GetPostRequest) (*postv1.GetPostResponse, error) {
	if req.PostId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "post_id required")
	}

	post, err := s.service.GetPost(ctx, req.PostId)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, status.Error(codes.NotFound, "post not found")
		}
		slog.Error("Failed to fetch post", "post_id", req.PostId, "error", err)
		return nil, status.Error(codes.Internal, "failed to fetch post")
	}
	return &postv1.GetPostResponse{Post: mapDomainToProto(post)}, nil
}

// GetPosts : flux global paginé (keyset)
func (s *Server) GetPosts(ctx context.Context, req *postv1.GetPostsRequest) (*postv1.GetPostsResponse, error) {
	page, err := s.service.ListPosts(ctx, mapPageRequest(req.Pagination))
	if err != nil {
		slog.Error("Failed to list posts", "error", err)
		return nil, status.Error(codes.Internal, "failed to list posts")
	}

	return &postv1.GetPostsResponse{
		Posts:    mapPosts(page.Items),
		PageInfo: mapPageInfo(page.Info()),
	}, nil
}

// GetPostsByUserId : page Profil, même mécanique restreinte à un auteur
func (s *Server) GetPostsByUserId(ctx context.Context, req *postv1.GetPostsByUserIdRequest) (*postv1.GetPostsResponse, error) {
	if req.UserId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id required")
	}

	page, err := s.service.ListPostsByAuthor(ctx, req.UserId, mapPageRequest(req.Pagination))
	if err != nil {
		slog.Error("Failed to list posts by author", "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "failed to list posts")
	}

	return &postv1.GetPostsResponse{
		Posts:    mapPosts(page.Items),
		PageInfo: mapPageInfo(page.Info()),
	}, nil
}

// --- HELPERS (Mappers) ---

func mapPageRequest(pr *postv1.PageRequest) pagination.Query {
	if pr == nil {
		return pagination.Query{}
	}
	q := pagination.Query{Size: int(pr.PageSize)}
	// Curseur incomplet -> traité comme absent (première page)
	if pr.CursorCreatedAt != nil && pr.CursorId > 0 {
		q.Cursor = pagination.At(pr.CursorCreatedAt.AsTime(), pr.CursorId)
	}
	return q
}

func mapPageInfo(info pagination.Info) *postv1.PageInfo {
	out := &postv1.PageInfo{HasMore: info.HasMore}
	if info.NextCursor != nil {
		out.NextCursorCreatedAt = timestamppb.New(*info.NextCursor.CreatedAt)
		out.NextCursorId = info.NextCursor.ID
	}
	return out
}

func mapPosts(posts []*domain.Post) []*postv1.Post {
	out := make([]*postv1.Post, len(posts))
	for i, p := range posts {
		out[i] = mapDomainToProto(p)
	}
	return out
}

func mapDomainToProto(p *domain.Post) *postv1.Post {
	if p == nil {
		return nil
	}
	return &postv1.Post{
		Id:        p.ID,
		AuthorId:  p.AuthorID,
		Content:   p.Content,
		Likes:     p.Counters.Likes,
		Shares:    p.Counters.Shares,
		Comments:  p.Counters.Comments,
		Views:     p.Counters.Views,
		CreatedAt: timestamppb.New(p.CreatedAt),
	}
}
