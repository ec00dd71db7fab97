// Package authctx vérifie les tokens d'accès RS256 côté service et expose
// l'identité appelante via le contexte. La signature seule fait foi : aucun
// aller-retour réseau vers le service d'identité.
package authctx

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims étend les claims standards JWT avec l'identifiant numérique interne.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Principal est l'identité attachée au contexte d'une requête authentifiée.
// Le token brut est conservé pour les appels sortants (propagation).
type Principal struct {
	UserID int64
	Token  string
}

// Clé privée pour le contexte (évite les collisions)
type contextKey struct{ name string }

var principalCtxKey = &contextKey{"principal"}

// WithPrincipal attache l'identité vérifiée au contexte.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// FromContext récupère l'identité attachée par l'intercepteur.
// ok vaut false pour une requête anonyme.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(Principal)
	return p, ok
}

// Verifier valide les tokens avec la clé publique du service d'identité.
type Verifier struct {
	publicKey *rsa.PublicKey
}

// NewVerifier charge la clé publique RSA depuis une chaîne PEM.
func NewVerifier(publicKeyPEM []byte) (*Verifier, error) {
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return &Verifier{publicKey: pubKey}, nil
}

// Verify contrôle la signature et retourne l'identité portée par le token.
func (v *Verifier) Verify(tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Sécurité critique : vérifier que l'alg est bien RS256
		// Empêche les attaques où l'attaquant force l'algo à "None" ou "HS256"
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	})
	if err != nil {
		return Principal{}, err // Token expiré ou signature invalide
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	userID := claims.UserID
	if userID == 0 {
		// Anciens tokens : l'id vit dans le Subject
		userID, err = strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || userID <= 0 {
			return Principal{}, ErrInvalidToken
		}
	}

	return Principal{UserID: userID, Token: tokenString}, nil
}
