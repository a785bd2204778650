package domain

import (
	"encoding/json"
	"fmt"

	apperrors "civiq/internal/platform/errors"
)

// Wire event names. Inbound events arrive from the server, outbound
// events are emitted by this client.
const (
	EventProblemUpdated   = "problemUpdated"
	EventNewProblemNearby = "newProblemNearby"
	EventUpdateProblem    = "updateProblem"
	EventJoinArea         = "joinArea"
)

// Envelope is the frame exchanged on the realtime channel.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type ProblemUpdate struct {
	ProblemID string `json:"problemId"`
	Status    string `json:"status"`
}

type AreaJoin struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radiusKm"`
}

func NewEnvelope(event string, payload any) (Envelope, error) {
	if event == "" {
		return Envelope{}, fmt.Errorf("%w: event name is required", apperrors.ErrInvalidInput)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode event payload: %w", err)
	}
	return Envelope{Event: event, Data: data}, nil
}
