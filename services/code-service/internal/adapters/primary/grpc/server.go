package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	codev1 "github.com/maelferrand/brume/gen/code/v1"
	"github.com/maelferrand/brume/services/code-service/internal/core/domain"
	"github.com/maelferrand/brume/services/code-service/internal/core/ports"
)

type Server struct {
	codev1.UnimplementedCodeServiceServer
	service ports.CodeService
}

func NewServer(service ports.CodeService) *Server {
	return &Server{service: service}
}

func (s *Server) Register(grpcServer *grpc.Server) {
	codev1.RegisterCodeServiceServer(grpcServer, s)
}

func (s *Server) IssueCode(ctx context.Context, req *codev1.IssueCodeRequest) (*codev1.IssueCodeResponse, error) {
	code, expiresIn, err := s.service.IssueCode(ctx, req.Identifier, req.Purpose,
		time.Duration(req.TtlSeconds)*time.Second)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyIdentifier) || errors.Is(err, domain.ErrEmptyPurpose) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		slog.Error("Failed to issue code", "error", err)
		return nil, status.Error(codes.Internal, "failed to issue code")
	}

	return &codev1.IssueCodeResponse{
		Code:             code,
		ExpiresInSeconds: int64(expiresIn / time.Second),
	}, nil
}

func (s *Server) VerifyCode(ctx context.Context, req *codev1.VerifyCodeRequest) (*codev1.VerifyCodeResponse, error) {
	valid, err := s.service.VerifyCode(ctx, req.Identifier, req.Purpose, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyIdentifier) || errors.Is(err, domain.ErrEmptyPurpose) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		slog.Error("Failed to verify code", "error", err)
		return nil, status.Error(codes.Internal, "failed to verify code")
	}

	return &codev1.VerifyCodeResponse{Valid: valid}, nil
}
