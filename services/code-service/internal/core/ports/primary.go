package ports

import (
	"context"
	"time"
)

type CodeService interface {
	// IssueCode génère et stocke un code à durée de vie bornée.
	// Réémettre pour le même couple (identifier, purpose) remplace le
	// code précédent.
	IssueCode(ctx context.Context, identifier, purpose string, ttl time.Duration) (code string, expiresIn time.Duration, err error)

	// VerifyCode consomme le code : un code ne réussit qu'une seule fois.
	VerifyCode(ctx context.Context, identifier, purpose, code string) (bool, error)
}
