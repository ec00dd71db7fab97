package authctx

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type testKeys struct {
	private  *rsa.PrivateKey
	verifier *Verifier
}

func newTestKeys(t *testing.T) testKeys {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	verifier, err := NewVerifier(pubPEM)
	require.NoError(t, err)

	return testKeys{private: key, verifier: verifier}
}

func (k testKeys) sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.private)
	require.NoError(t, err)
	return token
}

func TestVerify(t *testing.T) {
	keys := newTestKeys(t)

	token := keys.sign(t, Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			Subject:   "42",
		},
	})

	p, err := keys.verifier.Verify(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, p.UserID)
	require.Equal(t, token, p.Token)
}

func TestVerifyFallsBackToSubject(t *testing.T) {
	keys := newTestKeys(t)

	token := keys.sign(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		Subject:   "7",
	})

	p, err := keys.verifier.Verify(token)
	require.NoError(t, err)
	require.EqualValues(t, 7, p.UserID)
}

func TestVerifyRejectsExpired(t *testing.T) {
	keys := newTestKeys(t)

	token := keys.sign(t, Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := keys.verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongAlg(t *testing.T) {
	keys := newTestKeys(t)

	// Token HS256 signé avec la représentation de la clé publique : doit
	// être refusé avant même la vérification de signature.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 42}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = keys.verifier.Verify(token)
	require.Error(t, err)
}

func TestInterceptorPassesAnonymous(t *testing.T) {
	keys := newTestKeys(t)
	interceptor := UnaryServerInterceptor(keys.verifier)

	called := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		_, ok := FromContext(ctx)
		require.False(t, ok)
		return nil, nil
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestInterceptorInjectsPrincipal(t *testing.T) {
	keys := newTestKeys(t)
	interceptor := UnaryServerInterceptor(keys.verifier)

	token := keys.sign(t, Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		p, ok := FromContext(ctx)
		require.True(t, ok)
		require.EqualValues(t, 42, p.UserID)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestInterceptorRejectsBadFormat(t *testing.T) {
	keys := newTestKeys(t)
	interceptor := UnaryServerInterceptor(keys.verifier)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc"))

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler ne doit pas être appelé")
		return nil, nil
	})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestOutgoing(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{UserID: 42, Token: "tok"})

	out := Outgoing(ctx)
	md, ok := metadata.FromOutgoingContext(out)
	require.True(t, ok)
	require.Equal(t, []string{"Bearer tok"}, md.Get("authorization"))

	// Contexte anonyme : inchangé
	anon := Outgoing(context.Background())
	_, ok = metadata.FromOutgoingContext(anon)
	require.False(t, ok)
}
