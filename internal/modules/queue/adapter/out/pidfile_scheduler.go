package out

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	queueout "civiq/internal/modules/queue/port/out"
)

// PIDFileScheduler guards the background drain worker with a pidfile.
// A stale file left by a crashed worker is detected with a signal-0
// probe and overwritten.
type PIDFileScheduler struct {
	pidPath  string
	homePath string
}

func NewPIDFileScheduler(pidPath, homePath string) queueout.Scheduler {
	return &PIDFileScheduler{pidPath: pidPath, homePath: homePath}
}

func (s *PIDFileScheduler) Acquire(ctx context.Context) (bool, error) {
	armed, err := s.Armed(ctx)
	if err != nil {
		return false, err
	}
	if armed {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.pidPath), 0o755); err != nil {
		return false, fmt.Errorf("create pid dir: %w", err)
	}
	if err := os.WriteFile(s.pidPath, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return false, fmt.Errorf("write sync pid: %w", err)
	}
	return true, nil
}

func (s *PIDFileScheduler) Release(context.Context) error {
	if err := os.Remove(s.pidPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove sync pid: %w", err)
	}
	return nil
}

func (s *PIDFileScheduler) Armed(context.Context) (bool, error) {
	pid, err := s.readPID()
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return processAlive(pid), nil
}

// Spawn re-executes the current binary as a detached one-shot worker.
// The child acquires the pidfile itself, so a lost race just means the
// loser exits without work.
func (s *PIDFileScheduler) Spawn(context.Context) error {
	binary, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	cmd := exec.Command(binary, s.workerArgs()...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start sync worker: %w", err)
	}
	return cmd.Process.Release()
}

// workerArgs carries the parent's home directory to the child so it
// drains the same queue and writes the same pidfile.
func (s *PIDFileScheduler) workerArgs() []string {
	args := []string{"queue", "sync", "--oneshot"}
	if s.homePath != "" {
		args = append(args, "--home", s.homePath)
	}
	return args
}

func (s *PIDFileScheduler) readPID() (int, error) {
	raw, err := os.ReadFile(s.pidPath)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("decode sync pid: %w", err)
	}
	return pid, nil
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
