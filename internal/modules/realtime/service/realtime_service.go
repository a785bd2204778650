package service

import (
	"context"
	"time"

	"civiq/internal/modules/realtime/domain"
	realtimeout "civiq/internal/modules/realtime/port/out"
	"civiq/internal/platform/logger"
)

// emitTimeout bounds the dial attempt made for a fire-and-forget
// emission so a dead socket server cannot stall a workflow.
const emitTimeout = 2 * time.Second

type RealtimeService struct {
	channel realtimeout.Channel
}

func NewRealtimeService(channel realtimeout.Channel) *RealtimeService {
	return &RealtimeService{channel: channel}
}

func (s *RealtimeService) Connect(ctx context.Context) error {
	if s.channel.Connected() {
		return nil
	}
	return s.channel.Connect(ctx)
}

func (s *RealtimeService) Disconnect() error {
	return s.channel.Close()
}

// EmitProblemUpdate sends an advisory nudge. Dial and send failures
// are logged and swallowed.
func (s *RealtimeService) EmitProblemUpdate(ctx context.Context, problemID, status string) {
	envelope, err := domain.NewEnvelope(domain.EventUpdateProblem, domain.ProblemUpdate{ProblemID: problemID, Status: status})
	if err != nil {
		logger.Warn("build problem update event", "error", err)
		return
	}
	if !s.channel.Connected() {
		dialCtx, cancel := context.WithTimeout(ctx, emitTimeout)
		defer cancel()
		if err := s.channel.Connect(dialCtx); err != nil {
			logger.Debug("realtime channel unavailable", "error", err)
			return
		}
	}
	if err := s.channel.Send(ctx, envelope); err != nil {
		logger.Debug("emit problem update", "error", err)
	}
}

func (s *RealtimeService) JoinArea(ctx context.Context, join domain.AreaJoin) error {
	if err := s.Connect(ctx); err != nil {
		return err
	}
	envelope, err := domain.NewEnvelope(domain.EventJoinArea, join)
	if err != nil {
		return err
	}
	return s.channel.Send(ctx, envelope)
}

// Stream pumps inbound envelopes into the returned channel. The pump
// goroutine exits on ctx cancellation or transport loss and closes the
// channel either way.
func (s *RealtimeService) Stream(ctx context.Context) (<-chan domain.Envelope, error) {
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}
	events := make(chan domain.Envelope)
	go func() {
		defer close(events)
		for {
			envelope, err := s.channel.Receive(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("realtime channel dropped", "error", err)
				}
				return
			}
			select {
			case events <- envelope:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
