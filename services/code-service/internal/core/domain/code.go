package domain

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

var (
	ErrEmptyIdentifier = errors.New("identifier is empty")
	ErrEmptyPurpose    = errors.New("purpose is empty")
)

const (
	CodeLength = 6

	DefaultTTL = 10 * time.Minute
	MaxTTL     = time.Hour
)

// NewCode tire un code numérique à 6 chiffres (zéros de tête compris)
// avec le générateur cryptographique.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ClampTTL ramène une durée demandée dans les bornes du service.
func ClampTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	if ttl > MaxTTL {
		return MaxTTL
	}
	return ttl
}
