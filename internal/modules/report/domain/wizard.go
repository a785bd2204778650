package domain

import (
	"fmt"

	apperrors "civiq/internal/platform/errors"
)

type Step string

const (
	StepDetails    Step = "details"
	StepLocation   Step = "location"
	StepReview     Step = "review"
	StepSubmitting Step = "submitting"
	StepDone       Step = "done"
)

// Wizard is the submission state machine:
//
//	details -> location -> review -> submitting -> done
//
// with back transitions location->details and review->location.
// Submission may only begin from review, and only when the draft is
// submittable.
type Wizard struct {
	step               Step
	draft              Draft
	categoryOverridden bool
}

func NewWizard() *Wizard {
	return &Wizard{step: StepDetails, draft: Draft{Category: DefaultCategory}}
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) Draft() Draft { return w.draft }

func (w *Wizard) SetTitle(title string) error {
	if w.step != StepDetails {
		return w.stepError(StepDetails)
	}
	w.draft.Title = title
	return nil
}

func (w *Wizard) SetDescription(description string) error {
	if w.step != StepDetails {
		return w.stepError(StepDetails)
	}
	w.draft.Description = description
	return nil
}

// SetCategory records an explicit user choice, which later classifier
// suggestions must not override.
func (w *Wizard) SetCategory(category Category) error {
	if w.step != StepDetails {
		return w.stepError(StepDetails)
	}
	if err := category.Validate(); err != nil {
		return err
	}
	w.draft.Category = category
	w.categoryOverridden = true
	return nil
}

// SuggestCategory applies an advisory classification result. It is a no-op
// once the user has picked a category themselves.
func (w *Wizard) SuggestCategory(category Category) {
	if w.categoryOverridden || w.step != StepDetails {
		return
	}
	if category.Validate() != nil {
		return
	}
	w.draft.Category = category
}

func (w *Wizard) AttachPhoto(name string, photo []byte) error {
	if w.step != StepDetails {
		return w.stepError(StepDetails)
	}
	if err := ValidatePhoto(name, photo); err != nil {
		return err
	}
	w.draft.PhotoName = name
	w.draft.Photo = photo
	return nil
}

func (w *Wizard) SetPosition(position Position) error {
	if w.step != StepLocation {
		return w.stepError(StepLocation)
	}
	w.draft.Position = &position
	return nil
}

// Next advances details->location and location->review, enforcing the
// per-step gates.
func (w *Wizard) Next() error {
	switch w.step {
	case StepDetails:
		if w.draft.Title == "" || w.draft.Description == "" {
			return fmt.Errorf("%w: title and description are required", apperrors.ErrInvalidInput)
		}
		if err := ValidatePhoto(w.draft.PhotoName, w.draft.Photo); err != nil {
			return err
		}
		w.step = StepLocation
		return nil
	case StepLocation:
		if w.draft.Position == nil {
			return fmt.Errorf("%w: position is required", apperrors.ErrInvalidInput)
		}
		w.step = StepReview
		return nil
	default:
		return fmt.Errorf("%w: cannot advance from %s", apperrors.ErrInvalidInput, w.step)
	}
}

func (w *Wizard) Back() error {
	switch w.step {
	case StepLocation:
		w.step = StepDetails
		return nil
	case StepReview:
		w.step = StepLocation
		return nil
	default:
		return fmt.Errorf("%w: cannot go back from %s", apperrors.ErrInvalidInput, w.step)
	}
}

// BeginSubmit transitions review->submitting after a full draft check.
func (w *Wizard) BeginSubmit() error {
	if w.step != StepReview {
		return w.stepError(StepReview)
	}
	if err := w.draft.Submittable(); err != nil {
		return err
	}
	w.step = StepSubmitting
	return nil
}

// Complete terminates the workflow. Valid for both the online-accepted and
// the queued-offline outcome.
func (w *Wizard) Complete() error {
	if w.step != StepSubmitting {
		return w.stepError(StepSubmitting)
	}
	w.step = StepDone
	return nil
}

// FailSubmit returns to review after a server-rejected submission so the
// user can correct and retry.
func (w *Wizard) FailSubmit() error {
	if w.step != StepSubmitting {
		return w.stepError(StepSubmitting)
	}
	w.step = StepReview
	return nil
}

func (w *Wizard) stepError(want Step) error {
	return fmt.Errorf("%w: operation requires step %s, current step is %s", apperrors.ErrInvalidInput, want, w.step)
}
