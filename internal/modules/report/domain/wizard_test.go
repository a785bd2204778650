package domain_test

import (
	"errors"
	"testing"

	"civiq/internal/modules/report/domain"
	apperrors "civiq/internal/platform/errors"
)

func completeDetails(t *testing.T, w *domain.Wizard) {
	t.Helper()
	if err := w.SetTitle("broken drain"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if err := w.SetDescription("drain cover missing"); err != nil {
		t.Fatalf("set description: %v", err)
	}
	if err := w.AttachPhoto("drain.jpg", []byte{1}); err != nil {
		t.Fatalf("attach photo: %v", err)
	}
}

func TestWizardHappyPath(t *testing.T) {
	t.Parallel()
	w := domain.NewWizard()
	if w.Step() != domain.StepDetails {
		t.Fatalf("new wizard should start at details, got %s", w.Step())
	}
	completeDetails(t, w)
	if err := w.Next(); err != nil {
		t.Fatalf("advance to location: %v", err)
	}
	if err := w.SetPosition(domain.Position{Lat: 1, Lng: 2}); err != nil {
		t.Fatalf("set position: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("advance to review: %v", err)
	}
	if err := w.BeginSubmit(); err != nil {
		t.Fatalf("begin submit: %v", err)
	}
	if err := w.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if w.Step() != domain.StepDone {
		t.Fatalf("expected done, got %s", w.Step())
	}
}

func TestWizardStepGates(t *testing.T) {
	t.Parallel()
	w := domain.NewWizard()
	if err := w.Next(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty details should not advance, got %v", err)
	}
	if err := w.SetPosition(domain.Position{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("position is a location-step operation, got %v", err)
	}
	if err := w.BeginSubmit(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("submit requires review step, got %v", err)
	}

	completeDetails(t, w)
	if err := w.Next(); err != nil {
		t.Fatalf("advance to location: %v", err)
	}
	if err := w.Next(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("location step requires a position, got %v", err)
	}
	if err := w.SetTitle("late edit"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("title is a details-step operation, got %v", err)
	}
}

func TestWizardBackTransitions(t *testing.T) {
	t.Parallel()
	w := domain.NewWizard()
	if err := w.Back(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("details has no back transition, got %v", err)
	}
	completeDetails(t, w)
	_ = w.Next()
	if err := w.Back(); err != nil || w.Step() != domain.StepDetails {
		t.Fatalf("location should go back to details: %v step=%s", err, w.Step())
	}
	_ = w.Next()
	_ = w.SetPosition(domain.Position{Lat: 1, Lng: 2})
	_ = w.Next()
	if err := w.Back(); err != nil || w.Step() != domain.StepLocation {
		t.Fatalf("review should go back to location: %v step=%s", err, w.Step())
	}
}

func TestWizardCategorySuggestionNeverOverridesUserChoice(t *testing.T) {
	t.Parallel()
	w := domain.NewWizard()
	w.SuggestCategory(domain.CategoryAirPollution)
	if w.Draft().Category != domain.CategoryAirPollution {
		t.Fatalf("suggestion should apply before a user choice, got %s", w.Draft().Category)
	}
	if err := w.SetCategory(domain.CategoryNoisePollution); err != nil {
		t.Fatalf("set category: %v", err)
	}
	w.SuggestCategory(domain.CategoryWaterPollution)
	if w.Draft().Category != domain.CategoryNoisePollution {
		t.Fatalf("suggestion must not override explicit choice, got %s", w.Draft().Category)
	}
	w.SuggestCategory("bogus")
	if w.Draft().Category != domain.CategoryNoisePollution {
		t.Fatalf("invalid suggestion must be dropped, got %s", w.Draft().Category)
	}
}

func TestWizardFailSubmitReturnsToReview(t *testing.T) {
	t.Parallel()
	w := domain.NewWizard()
	completeDetails(t, w)
	_ = w.Next()
	_ = w.SetPosition(domain.Position{Lat: 1, Lng: 2})
	_ = w.Next()
	if err := w.BeginSubmit(); err != nil {
		t.Fatalf("begin submit: %v", err)
	}
	if err := w.FailSubmit(); err != nil {
		t.Fatalf("fail submit: %v", err)
	}
	if w.Step() != domain.StepReview {
		t.Fatalf("failed submission should return to review, got %s", w.Step())
	}
	if err := w.BeginSubmit(); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}
