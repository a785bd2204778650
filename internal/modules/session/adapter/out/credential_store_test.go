package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	out "civiq/internal/modules/session/adapter/out"
	"civiq/internal/modules/session/domain"
	apperrors "civiq/internal/platform/errors"
)

func TestSaveLoadClear(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := out.NewFileCredentialStore(path)
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("missing file should read as not authenticated, got %v", err)
	}

	session := domain.Session{Token: "jwt-1", AccountType: domain.AccountTypeUser, UserID: "u-1"}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != session {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("cleared store should read as not authenticated, got %v", err)
	}
	// Clearing twice is fine.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestSaveRejectsPartialSession(t *testing.T) {
	t.Parallel()
	store := out.NewFileCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	err := store.Save(context.Background(), domain.Session{Token: "jwt-only"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("token without account type must not be persisted, got %v", err)
	}
}

func TestTokenSourceFallsBackToEmpty(t *testing.T) {
	t.Parallel()
	store := out.NewFileCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	tokens := out.NewStoreTokenSource(store)
	if token := tokens.Token(); token != "" {
		t.Fatalf("unauthenticated token source should be empty, got %q", token)
	}

	session := domain.Session{Token: "jwt-2", AccountType: domain.AccountTypeVolunteer}
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if token := tokens.Token(); token != "jwt-2" {
		t.Fatalf("expected stored token, got %q", token)
	}
}
