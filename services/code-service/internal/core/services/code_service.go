package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maelferrand/brume/services/code-service/internal/core/domain"
	"github.com/maelferrand/brume/services/code-service/internal/core/ports"
)

type service struct {
	store ports.CodeStore
}

func NewCodeService(store ports.CodeStore) ports.CodeService {
	return &service{store: store}
}

// storeKey isole les codes par usage : le code "reset mot de passe" de
// bob ne valide pas son inscription.
func storeKey(identifier, purpose string) string {
	return fmt.Sprintf("code:%s:%s", identifier, purpose)
}

func (s *service) IssueCode(ctx context.Context, identifier, purpose string, ttl time.Duration) (string, time.Duration, error) {
	if identifier == "" {
		return "", 0, domain.ErrEmptyIdentifier
	}
	if purpose == "" {
		return "", 0, domain.ErrEmptyPurpose
	}

	code, err := domain.NewCode()
	if err != nil {
		return "", 0, err
	}

	ttl = domain.ClampTTL(ttl)
	if err := s.store.Put(ctx, storeKey(identifier, purpose), code, ttl); err != nil {
		return "", 0, err
	}

	slog.Info("Code issued", "identifier", identifier, "purpose", purpose, "ttl", ttl)
	return code, ttl, nil
}

func (s *service) VerifyCode(ctx context.Context, identifier, purpose, code string) (bool, error) {
	if identifier == "" {
		return false, domain.ErrEmptyIdentifier
	}
	if purpose == "" {
		return false, domain.ErrEmptyPurpose
	}
	if code == "" {
		return false, nil
	}

	ok, err := s.store.TakeIfMatch(ctx, storeKey(identifier, purpose), code)
	if err != nil {
		return false, err
	}

	slog.Info("Code verified", "identifier", identifier, "purpose", purpose, "valid", ok)
	return ok, nil
}
