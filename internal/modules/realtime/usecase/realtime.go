package usecase

import (
	"context"

	"civiq/internal/modules/realtime/domain"
	"civiq/internal/modules/realtime/dto"
	realtimein "civiq/internal/modules/realtime/port/in"
	"civiq/internal/modules/realtime/service"
)

type Interactor struct {
	svc *service.RealtimeService
}

func NewInteractor(svc *service.RealtimeService) realtimein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Connect(ctx context.Context) error {
	return i.svc.Connect(ctx)
}

func (i *Interactor) Disconnect() error {
	return i.svc.Disconnect()
}

func (i *Interactor) EmitProblemUpdate(ctx context.Context, problemID, status string) {
	i.svc.EmitProblemUpdate(ctx, problemID, status)
}

func (i *Interactor) JoinArea(ctx context.Context, input dto.JoinAreaInput) error {
	return i.svc.JoinArea(ctx, domain.AreaJoin{Lat: input.Lat, Lng: input.Lng, RadiusKm: input.RadiusKm})
}

func (i *Interactor) Watch(ctx context.Context) (<-chan dto.EventOutput, error) {
	stream, err := i.svc.Stream(ctx)
	if err != nil {
		return nil, err
	}
	events := make(chan dto.EventOutput)
	go func() {
		defer close(events)
		for envelope := range stream {
			select {
			case events <- dto.EventOutput{Event: envelope.Event, Payload: string(envelope.Data)}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
