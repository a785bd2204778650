package out

import (
	"context"
	"fmt"
	"strconv"

	"civiq/internal/modules/queue/domain"
	queueout "civiq/internal/modules/queue/port/out"
	"civiq/internal/platform/rest"
)

// RESTSubmitter replays a queued entry with the same multipart shape a
// live submission uses, so the server cannot tell the two apart.
type RESTSubmitter struct {
	client *rest.Client
}

func NewRESTSubmitter(client *rest.Client) queueout.Submitter {
	return &RESTSubmitter{client: client}
}

func (s *RESTSubmitter) SubmitQueued(ctx context.Context, entry domain.Entry) (string, error) {
	fields := map[string]string{
		"title":       entry.Title,
		"description": entry.Description,
		"category":    entry.Category,
		"latitude":    strconv.FormatFloat(entry.Lat, 'f', -1, 64),
		"longitude":   strconv.FormatFloat(entry.Lng, 'f', -1, 64),
	}
	response := struct {
		ID string `json:"_id"`
	}{}
	if err := s.client.PostMultipart(ctx, "/problems", fields, "photo", entry.PhotoName, entry.Photo, &response); err != nil {
		return "", fmt.Errorf("replay queued report: %w", err)
	}
	return response.ID, nil
}
