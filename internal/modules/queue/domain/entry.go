package domain

import (
	"fmt"
	"time"

	apperrors "civiq/internal/platform/errors"
)

// SchemaVersion is stamped on every stored entry so a future layout
// change can migrate or skip rows it does not understand.
const SchemaVersion = 1

// StatusPendingSync is the only status a queued entry can carry. It is
// assigned locally and never comes from the server.
const StatusPendingSync = "pending_sync"

// Entry is a report draft captured while the server was unreachable.
// It holds everything needed to replay the submission later.
type Entry struct {
	ID          string
	Title       string
	Description string
	Category    string
	PhotoName   string
	Photo       []byte
	Lat         float64
	Lng         float64
	Status      string
	EnqueuedAt  time.Time
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: entry id is required", apperrors.ErrInvalidInput)
	}
	if e.Title == "" {
		return fmt.Errorf("%w: entry title is required", apperrors.ErrInvalidInput)
	}
	if e.Category == "" {
		return fmt.Errorf("%w: entry category is required", apperrors.ErrInvalidInput)
	}
	if e.Status != StatusPendingSync {
		return fmt.Errorf("%w: entry status must be %q", apperrors.ErrInvalidInput, StatusPendingSync)
	}
	return nil
}
