package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maelferrand/brume/services/code-service/internal/core/domain"
)

// fakeStore reproduit la sémantique Redis : TTL et compare-and-delete.
type fakeStore struct {
	entries map[string]entry
	now     time.Time
}

type entry struct {
	code      string
	expiresAt time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: map[string]entry{},
		now:     time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) Put(_ context.Context, key, code string, ttl time.Duration) error {
	f.entries[key] = entry{code: code, expiresAt: f.now.Add(ttl)}
	return nil
}

func (f *fakeStore) TakeIfMatch(_ context.Context, key, code string) (bool, error) {
	e, ok := f.entries[key]
	if !ok || !f.now.Before(e.expiresAt) {
		delete(f.entries, key)
		return false, nil
	}
	if e.code != code {
		return false, nil
	}
	delete(f.entries, key)
	return true, nil
}

func TestIssueAndVerify(t *testing.T) {
	store := newFakeStore()
	svc := NewCodeService(store)

	code, expiresIn, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", 0)
	require.NoError(t, err)
	require.Len(t, code, domain.CodeLength)
	require.Equal(t, domain.DefaultTTL, expiresIn)

	ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "signup", code)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyIsOneShot(t *testing.T) {
	store := newFakeStore()
	svc := NewCodeService(store)

	code, _, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", time.Minute)
	require.NoError(t, err)

	ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "signup", code)
	require.NoError(t, err)
	require.True(t, ok)

	// Le même code ne passe pas deux fois
	ok, err = svc.VerifyCode(context.Background(), "bob@example.com", "signup", code)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyWrongCodeDoesNotConsume(t *testing.T) {
	store := newFakeStore()
	svc := NewCodeService(store)

	code, _, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", time.Minute)
	require.NoError(t, err)

	ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "signup", "000000x")
	require.NoError(t, err)
	require.False(t, ok)

	// Le bon code reste valable après une tentative ratée
	ok, err = svc.VerifyCode(context.Background(), "bob@example.com", "signup", code)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyExpired(t *testing.T) {
	store := newFakeStore()
	svc := NewCodeService(store)

	code, _, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", time.Minute)
	require.NoError(t, err)

	store.now = store.now.Add(2 * time.Minute)

	ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "signup", code)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPurposesAreIsolated(t *testing.T) {
	store := newFakeStore()
	svc := NewCodeService(store)

	code, _, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", time.Minute)
	require.NoError(t, err)

	ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "password_reset", code)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReissueReplaces(t *testing.T) {
	store := newFakeStore()
	svc := NewCodeService(store)

	first, _, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", time.Minute)
	require.NoError(t, err)
	second, _, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", time.Minute)
	require.NoError(t, err)

	if first != second {
		ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "signup", first)
		require.NoError(t, err)
		require.False(t, ok, "l'ancien code doit être invalidé par la réémission")
	}

	ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "signup", second)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTTLClamping(t *testing.T) {
	store := newFakeStore()
	svc := NewCodeService(store)

	_, expiresIn, err := svc.IssueCode(context.Background(), "bob@example.com", "signup", 24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, domain.MaxTTL, expiresIn)
}

func TestValidation(t *testing.T) {
	svc := NewCodeService(newFakeStore())

	_, _, err := svc.IssueCode(context.Background(), "", "signup", 0)
	require.ErrorIs(t, err, domain.ErrEmptyIdentifier)

	_, _, err = svc.IssueCode(context.Background(), "bob@example.com", "", 0)
	require.ErrorIs(t, err, domain.ErrEmptyPurpose)

	ok, err := svc.VerifyCode(context.Background(), "bob@example.com", "signup", "")
	require.NoError(t, err)
	require.False(t, ok)
}
