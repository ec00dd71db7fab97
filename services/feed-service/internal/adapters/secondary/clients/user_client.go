package clients

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"

	userv1 "github.com/maelferrand/brume/gen/user/v1"
	"github.com/maelferrand/brume/pkg/authctx"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
)

type UserClient struct {
	client userv1.UserServiceClient
	conn   *grpc.ClientConn
}

// NewUserClient initialise la connexion gRPC vers l'annuaire utilisateur
// Note: En prod, on injecterait des options pour le retry, le load balancing, etc.
func NewUserClient(targetURL string) (*UserClient, error) {
	conn, err := grpc.NewClient(targetURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, err
	}

	return &UserClient{
		client: userv1.NewUserServiceClient(conn),
		conn:   conn,
	}, nil
}

func (c *UserClient) Close() error {
	return c.conn.Close()
}

// GetAuthor résout la fiche publique d'un auteur.
// Un NotFound devient (nil, nil) : le service appliquera son repli.
func (c *UserClient) GetAuthor(ctx context.Context, userID int64) (*domain.Author, error) {
	slog.Debug("Asking user-service for author", "user_id", userID)

	// Le token de l'appelant voyage avec la requête sortante
	ctx = authctx.Outgoing(ctx)

	resp, err := c.client.GetPostUserDataById(ctx, &userv1.GetPostUserDataByIdRequest{
		UserId: userID,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	u := resp.GetUser()
	if u == nil {
		return nil, nil
	}

	return &domain.Author{
		ID:      u.Id,
		Login:   u.Login,
		Name:    u.Name,
		Surname: u.Surname,
	}, nil
}
