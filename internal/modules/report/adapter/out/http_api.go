package out

import (
	"context"
	"fmt"
	"strconv"

	"civiq/internal/modules/report/domain"
	reportout "civiq/internal/modules/report/port/out"
	"civiq/internal/platform/rest"
)

type problemPayload struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	PhotoURL    string `json:"photoUrl"`
	Location    struct {
		Coordinates []float64 `json:"coordinates"` // [lng, lat]
	} `json:"location"`
	ReportedBy struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"reportedBy"`
	AssignedTo *struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"assignedTo"`
	Points int `json:"points"`
}

type RESTProblemAPI struct {
	client *rest.Client
}

func NewRESTProblemAPI(client *rest.Client) reportout.ProblemAPI {
	return &RESTProblemAPI{client: client}
}

func (a *RESTProblemAPI) Submit(ctx context.Context, draft domain.Draft) (domain.Problem, error) {
	fields := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
		"category":    string(draft.Category),
		"latitude":    strconv.FormatFloat(draft.Position.Lat, 'f', -1, 64),
		"longitude":   strconv.FormatFloat(draft.Position.Lng, 'f', -1, 64),
	}
	payload := problemPayload{}
	if err := a.client.PostMultipart(ctx, "/problems", fields, "photo", draft.PhotoName, draft.Photo, &payload); err != nil {
		return domain.Problem{}, fmt.Errorf("submit problem: %w", err)
	}
	return decodeProblem(payload), nil
}

func (a *RESTProblemAPI) List(ctx context.Context) ([]domain.Problem, error) {
	payloads := []problemPayload{}
	if err := a.client.GetJSON(ctx, "/problems", &payloads); err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	problems := make([]domain.Problem, 0, len(payloads))
	for _, payload := range payloads {
		problems = append(problems, decodeProblem(payload))
	}
	return problems, nil
}

func (a *RESTProblemAPI) UpdateStatus(ctx context.Context, problemID string, status domain.Status) (domain.Problem, error) {
	payload := problemPayload{}
	body := struct {
		Status string `json:"status"`
	}{Status: string(status)}
	if err := a.client.PatchJSON(ctx, "/problems/"+problemID+"/status", body, &payload); err != nil {
		return domain.Problem{}, fmt.Errorf("update problem status: %w", err)
	}
	return decodeProblem(payload), nil
}

func decodeProblem(payload problemPayload) domain.Problem {
	problem := domain.Problem{
		ID:          payload.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Category:    domain.Category(payload.Category),
		Status:      domain.Status(payload.Status),
		PhotoURL:    payload.PhotoURL,
		ReportedBy:  domain.Reporter{ID: payload.ReportedBy.ID, Name: payload.ReportedBy.Name},
		Points:      payload.Points,
	}
	if len(payload.Location.Coordinates) == 2 {
		problem.Position = domain.Position{Lng: payload.Location.Coordinates[0], Lat: payload.Location.Coordinates[1]}
	}
	if payload.AssignedTo != nil {
		problem.AssignedTo = payload.AssignedTo.Name
	}
	return problem
}
