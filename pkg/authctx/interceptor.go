package authctx

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor décode le header Authorization entrant et enrichit
// le contexte avec le Principal vérifié.
func UnaryServerInterceptor(verifier *Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}

		values := md.Get("authorization")
		// Pas de header ? On laisse passer : chaque handler décide si
		// l'anonymat est acceptable pour son opération.
		if len(values) == 0 {
			return handler(ctx, req)
		}

		header := values[0]
		if !strings.HasPrefix(header, "Bearer ") {
			return nil, status.Error(codes.Unauthenticated, "invalid token format")
		}

		principal, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		return handler(WithPrincipal(ctx, principal), req)
	}
}

// Outgoing propage le token du Principal vers un appel gRPC sortant.
// Sans Principal, le contexte repart tel quel.
func Outgoing(ctx context.Context) context.Context {
	p, ok := FromContext(ctx)
	if !ok {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+p.Token)
}
