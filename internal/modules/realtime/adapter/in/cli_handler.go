package in

import (
	"context"

	realtimedto "civiq/internal/modules/realtime/dto"
	realtimein "civiq/internal/modules/realtime/port/in"
)

type CLIHandler struct {
	usecase realtimein.Usecase
}

func NewCLIHandler(usecase realtimein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) JoinArea(ctx context.Context, lat, lng, radiusKm float64) error {
	return h.usecase.JoinArea(ctx, realtimedto.JoinAreaInput{Lat: lat, Lng: lng, RadiusKm: radiusKm})
}

func (h CLIHandler) Watch(ctx context.Context) (<-chan realtimedto.EventOutput, error) {
	return h.usecase.Watch(ctx)
}

func (h CLIHandler) Disconnect() error {
	return h.usecase.Disconnect()
}
