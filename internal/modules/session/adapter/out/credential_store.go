package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"civiq/internal/modules/session/domain"
	sessionout "civiq/internal/modules/session/port/out"
	apperrors "civiq/internal/platform/errors"
)

type credentialFile struct {
	SchemaVersion int            `json:"schema_version"`
	Session       domain.Session `json:"session"`
}

// FileCredentialStore persists the token/account-type pair as one JSON
// document so the two values can never be observed half-written.
type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore(path string) sessionout.CredentialStore {
	return &FileCredentialStore{path: path}
}

func (s *FileCredentialStore) Save(_ context.Context, session domain.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	payload, err := json.MarshalIndent(credentialFile{SchemaVersion: domain.SchemaVersion, Session: session}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Load(_ context.Context) (domain.Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Session{}, apperrors.ErrNotAuthenticated
		}
		return domain.Session{}, fmt.Errorf("read credentials: %w", err)
	}
	file := credentialFile{}
	if err := json.Unmarshal(payload, &file); err != nil {
		return domain.Session{}, fmt.Errorf("decode credentials: %w", err)
	}
	if !file.Session.Authenticated() {
		return domain.Session{}, apperrors.ErrNotAuthenticated
	}
	return file.Session, nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// StoreTokenSource adapts the credential store to the gateway client's
// read-only token view.
type StoreTokenSource struct {
	store sessionout.CredentialStore
}

func NewStoreTokenSource(store sessionout.CredentialStore) *StoreTokenSource {
	return &StoreTokenSource{store: store}
}

func (t *StoreTokenSource) Token() string {
	session, err := t.store.Load(context.Background())
	if err != nil {
		return ""
	}
	return session.Token
}
