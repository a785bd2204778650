package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"civiq/internal/modules/report/domain"
	reportout "civiq/internal/modules/report/port/out"
	apperrors "civiq/internal/platform/errors"
)

// ExecLocator shells out to a configured helper that prints
// {"lat": ..., "lng": ...} on stdout. One-shot, no stream.
type ExecLocator struct {
	command string
}

func NewExecLocator(command string) reportout.Locator {
	return &ExecLocator{command: command}
}

func (l *ExecLocator) CurrentPosition(ctx context.Context) (domain.Position, error) {
	argv := strings.Fields(l.command)
	if len(argv) == 0 {
		return domain.Position{}, fmt.Errorf("locate command is empty")
	}
	output, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		return domain.Position{}, fmt.Errorf("run locate command: %w", err)
	}
	position := struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}{}
	if err := json.Unmarshal(output, &position); err != nil {
		return domain.Position{}, fmt.Errorf("decode locate output: %w", err)
	}
	return domain.Position{Lat: position.Lat, Lng: position.Lng}, nil
}

// StaticLocator serves a fixed position from configuration.
type StaticLocator struct {
	position domain.Position
}

func NewStaticLocator(lat, lng float64) reportout.Locator {
	return &StaticLocator{position: domain.Position{Lat: lat, Lng: lng}}
}

func (l *StaticLocator) CurrentPosition(context.Context) (domain.Position, error) {
	return l.position, nil
}

// NullLocator is wired when no position source is configured at all.
type NullLocator struct{}

func NewNullLocator() reportout.Locator {
	return NullLocator{}
}

func (NullLocator) CurrentPosition(context.Context) (domain.Position, error) {
	return domain.Position{}, apperrors.ErrPositionUnavailable
}

// FallbackLocator tries the primary source and falls back once.
type FallbackLocator struct {
	primary  reportout.Locator
	fallback reportout.Locator
}

func NewFallbackLocator(primary, fallback reportout.Locator) reportout.Locator {
	return &FallbackLocator{primary: primary, fallback: fallback}
}

func (l *FallbackLocator) CurrentPosition(ctx context.Context) (domain.Position, error) {
	position, err := l.primary.CurrentPosition(ctx)
	if err == nil {
		return position, nil
	}
	return l.fallback.CurrentPosition(ctx)
}
