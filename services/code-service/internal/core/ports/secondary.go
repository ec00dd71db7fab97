package ports

import (
	"context"
	"time"
)

// CodeStore est un stockage clé/valeur expirant : l'expiration est
// entièrement déléguée au store, le service ne tient aucun timer.
type CodeStore interface {
	// Put écrit (ou remplace) le code sous key avec le TTL donné.
	Put(ctx context.Context, key, code string, ttl time.Duration) error

	// TakeIfMatch compare ET supprime atomiquement : true si le code
	// correspondait, false sinon (absent, expiré ou différent). Un code
	// différent ne consomme pas l'entrée.
	TakeIfMatch(ctx context.Context, key, code string) (bool, error)
}
