package out

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestWorkerArgsPropagateHome(t *testing.T) {
	t.Parallel()
	s := &PIDFileScheduler{pidPath: "/tmp/sync.pid", homePath: "/data/civiq"}
	args := s.workerArgs()
	want := []string{"queue", "sync", "--oneshot", "--home", "/data/civiq"}
	if len(args) != len(want) {
		t.Fatalf("unexpected args %v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: got %q want %q", i, args[i], want[i])
		}
	}
}

func TestWorkerArgsWithoutHome(t *testing.T) {
	t.Parallel()
	s := &PIDFileScheduler{pidPath: "/tmp/sync.pid"}
	args := s.workerArgs()
	if len(args) != 3 || args[2] != "--oneshot" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestAcquireWritesOwnPID(t *testing.T) {
	t.Parallel()
	pidPath := filepath.Join(t.TempDir(), "sync.pid")
	s := &PIDFileScheduler{pidPath: pidPath}

	acquired, err := s.Acquire(context.Background())
	if err != nil || !acquired {
		t.Fatalf("acquire: acquired=%t err=%v", acquired, err)
	}
	raw, err := os.ReadFile(pidPath)
	if err != nil {
		t.Fatalf("read pidfile: %v", err)
	}
	if raw := string(raw); raw != strconv.Itoa(os.Getpid()) {
		t.Fatalf("pidfile holds %q, want own pid", raw)
	}

	// The test process is alive, so the slot reads as taken.
	if acquired, _ := s.Acquire(context.Background()); acquired {
		t.Fatalf("second acquire must refuse while the holder lives")
	}

	if err := s.Release(context.Background()); err != nil {
		t.Fatalf("release: %v", err)
	}
	if armed, _ := s.Armed(context.Background()); armed {
		t.Fatalf("released slot should not read armed")
	}
}

func TestStalePIDFileIsOverwritten(t *testing.T) {
	t.Parallel()
	pidPath := filepath.Join(t.TempDir(), "sync.pid")
	// No live process has this pid on any reasonable system.
	if err := os.WriteFile(pidPath, []byte("999999999"), 0o644); err != nil {
		t.Fatalf("seed pidfile: %v", err)
	}
	s := &PIDFileScheduler{pidPath: pidPath}

	if armed, err := s.Armed(context.Background()); err != nil || armed {
		t.Fatalf("stale pidfile must not read armed: armed=%t err=%v", armed, err)
	}
	if acquired, err := s.Acquire(context.Background()); err != nil || !acquired {
		t.Fatalf("stale slot should be reclaimable: acquired=%t err=%v", acquired, err)
	}
}
