package domain_test

import (
	"errors"
	"testing"

	"civiq/internal/modules/report/domain"
	apperrors "civiq/internal/platform/errors"
)

func TestValidatePhotoSizeCap(t *testing.T) {
	t.Parallel()
	if err := domain.ValidatePhoto("a.jpg", make([]byte, domain.MaxPhotoBytes)); err != nil {
		t.Fatalf("photo at the cap should pass: %v", err)
	}
	err := domain.ValidatePhoto("a.jpg", make([]byte, domain.MaxPhotoBytes+1))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("oversized photo should be invalid input, got %v", err)
	}
	if err := domain.ValidatePhoto("a.jpg", nil); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing photo should be invalid input, got %v", err)
	}
	if err := domain.ValidatePhoto("  ", []byte{1}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank photo name should be invalid input, got %v", err)
	}
}

func TestDraftSubmittable(t *testing.T) {
	t.Parallel()
	draft := domain.Draft{
		Title:       "overflowing bin",
		Description: "bin on main street is overflowing",
		Category:    domain.CategoryWaste,
		PhotoName:   "bin.jpg",
		Photo:       []byte{1, 2, 3},
		Position:    &domain.Position{Lat: 12.9, Lng: 77.6},
	}
	if err := draft.Submittable(); err != nil {
		t.Fatalf("complete draft should be submittable: %v", err)
	}

	missing := draft
	missing.Position = nil
	if err := missing.Submittable(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("draft without position should be invalid, got %v", err)
	}

	missing = draft
	missing.Title = " "
	if err := missing.Submittable(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("draft without title should be invalid, got %v", err)
	}

	missing = draft
	missing.Category = "plastic"
	if err := missing.Submittable(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown category should be invalid, got %v", err)
	}
}

func TestStatusValidateUpdate(t *testing.T) {
	t.Parallel()
	for _, status := range []domain.Status{domain.StatusAssigned, domain.StatusInProgress, domain.StatusSolved} {
		if err := status.ValidateUpdate(); err != nil {
			t.Fatalf("status %s should be settable: %v", status, err)
		}
	}
	for _, status := range []domain.Status{domain.StatusPending, domain.StatusPendingSync, "closed"} {
		if err := status.ValidateUpdate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("status %s should be rejected, got %v", status, err)
		}
	}
}
