package service

import (
	"context"
	"fmt"
	"time"

	"civiq/internal/modules/report/domain"
	reportout "civiq/internal/modules/report/port/out"
	apperrors "civiq/internal/platform/errors"
)

// classifyTimeout bounds the advisory classification call so it can never
// block wizard progression.
const classifyTimeout = 3 * time.Second

type ReportService struct {
	api        reportout.ProblemAPI
	classifier reportout.Classifier
	locator    reportout.Locator
}

func NewReportService(api reportout.ProblemAPI, classifier reportout.Classifier, locator reportout.Locator) *ReportService {
	return &ReportService{api: api, classifier: classifier, locator: locator}
}

// BuildDraft assembles and validates a submittable draft from raw input.
func (s *ReportService) BuildDraft(title, description, category, photoName string, photo []byte, position *domain.Position) (domain.Draft, error) {
	draft := domain.Draft{
		Title:       title,
		Description: description,
		Category:    domain.Category(category),
		PhotoName:   photoName,
		Photo:       photo,
		Position:    position,
	}
	if draft.Category == "" {
		draft.Category = domain.DefaultCategory
	}
	if err := draft.Submittable(); err != nil {
		return domain.Draft{}, err
	}
	return draft, nil
}

func (s *ReportService) Submit(ctx context.Context, draft domain.Draft) (domain.Problem, error) {
	return s.api.Submit(ctx, draft)
}

func (s *ReportService) Classify(ctx context.Context, photoName string, photo []byte) (domain.Category, error) {
	if s.classifier == nil {
		return "", fmt.Errorf("%w: no classifier configured", apperrors.ErrNotFound)
	}
	callCtx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()
	category, err := s.classifier.Classify(callCtx, photoName, photo)
	if err != nil {
		return "", fmt.Errorf("classify photo: %w", err)
	}
	if err := category.Validate(); err != nil {
		return "", err
	}
	return category, nil
}

func (s *ReportService) AcquirePosition(ctx context.Context) (domain.Position, error) {
	position, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		return domain.Position{}, fmt.Errorf("%w: %v", apperrors.ErrPositionUnavailable, err)
	}
	return position, nil
}

func (s *ReportService) List(ctx context.Context) ([]domain.Problem, error) {
	return s.api.List(ctx)
}

func (s *ReportService) UpdateStatus(ctx context.Context, problemID string, status domain.Status) (domain.Problem, error) {
	if problemID == "" {
		return domain.Problem{}, fmt.Errorf("%w: problem id is required", apperrors.ErrInvalidInput)
	}
	if err := status.ValidateUpdate(); err != nil {
		return domain.Problem{}, err
	}
	return s.api.UpdateStatus(ctx, problemID, status)
}
