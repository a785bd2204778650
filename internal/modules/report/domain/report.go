package domain

import (
	"fmt"
	"strings"

	apperrors "civiq/internal/platform/errors"
)

// MaxPhotoBytes caps report photo attachments at 5 MB.
const MaxPhotoBytes = 5 << 20

type Category string

const (
	CategoryWaste          Category = "waste"
	CategoryAirPollution   Category = "air_pollution"
	CategoryWaterPollution Category = "water_pollution"
	CategoryNoisePollution Category = "noise_pollution"
	CategoryOther          Category = "other"
)

// DefaultCategory is applied to new drafts until the user or the
// classifier picks another one.
const DefaultCategory = CategoryWaste

func (c Category) Validate() error {
	switch c {
	case CategoryWaste, CategoryAirPollution, CategoryWaterPollution, CategoryNoisePollution, CategoryOther:
		return nil
	default:
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrInvalidInput, string(c))
	}
}

func Categories() []Category {
	return []Category{CategoryWaste, CategoryAirPollution, CategoryWaterPollution, CategoryNoisePollution, CategoryOther}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusSolved     Status = "solved"
	// StatusPendingSync is queue-local only; the server never sees it.
	StatusPendingSync Status = "pending_sync"
)

// ValidateUpdate rejects statuses that volunteers may not set.
func (s Status) ValidateUpdate() error {
	switch s {
	case StatusAssigned, StatusInProgress, StatusSolved:
		return nil
	default:
		return fmt.Errorf("%w: status must be assigned, in_progress or solved", apperrors.ErrInvalidInput)
	}
}

type Position struct {
	Lat float64
	Lng float64
}

// Draft is a report under construction. Position is nil until acquired.
type Draft struct {
	Title       string
	Description string
	Category    Category
	PhotoName   string
	Photo       []byte
	Position    *Position
}

func ValidatePhoto(name string, photo []byte) error {
	if len(photo) == 0 {
		return fmt.Errorf("%w: photo is required", apperrors.ErrInvalidInput)
	}
	if len(photo) > MaxPhotoBytes {
		return fmt.Errorf("%w: photo exceeds 5MB", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: photo name is required", apperrors.ErrInvalidInput)
	}
	return nil
}

// Submittable reports whether the draft may enter submission: title,
// description, photo and position must all be present.
func (d Draft) Submittable() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrInvalidInput)
	}
	if err := d.Category.Validate(); err != nil {
		return err
	}
	if err := ValidatePhoto(d.PhotoName, d.Photo); err != nil {
		return err
	}
	if d.Position == nil {
		return fmt.Errorf("%w: position is required", apperrors.ErrInvalidInput)
	}
	return nil
}

type Reporter struct {
	ID   string
	Name string
}

// Problem is a server-owned report.
type Problem struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Status      Status
	PhotoURL    string
	Position    Position
	ReportedBy  Reporter
	AssignedTo  string
	Points      int
}
