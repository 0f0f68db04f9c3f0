// File: internal/compose/exec.go
// Brief: docker compose lifecycle execution.

package compose

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

// Stack states reported by Status.
const (
	StateRunning = "running"
	StateStopped = "stopped"
)

// StackStatus summarizes the containers of one stack.
type StackStatus struct {
	State   string
	Total   int
	Running int
}

// LogOptions shape a compose logs invocation.
type LogOptions struct {
	Follow     bool
	Since      string
	Until      string
	Tail       string
	Timestamps bool
}

// Executor invokes the compose tool per stack directory. Start/stop
// failures are outcomes, not aborts: callers iterate batches and report
// per-stack results. The executor never assumes ordering or mutual
// exclusion across directories.
type Executor struct {
	base   []string
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger
}

// NewExecutor parses command (default "docker compose") into the base argv.
func NewExecutor(command string, out, errOut io.Writer, log *zap.Logger) (*Executor, error) {
	if strings.TrimSpace(command) == "" {
		command = "docker compose"
	}
	base, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse compose command %q: %w", command, err)
	}
	if len(base) == 0 {
		return nil, fmt.Errorf("compose command %q is empty", command)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{base: base, out: out, errOut: errOut, log: log}, nil
}

func (e *Executor) command(ctx context.Context, dir string, args ...string) *exec.Cmd {
	argv := append(append([]string(nil), e.base...), args...)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	return cmd
}

// Up starts the stack in dir. The returned error is the per-stack outcome.
func (e *Executor) Up(ctx context.Context, dir string, detached bool) error {
	args := []string{"up"}
	if detached {
		args = append(args, "-d")
	}
	cmd := e.command(ctx, dir, args...)
	cmd.Stdout = e.out
	cmd.Stderr = e.errOut
	e.log.Debug("compose up", zap.String("dir", dir), zap.Strings("args", args))
	return cmd.Run()
}

// Down stops the stack in dir.
func (e *Executor) Down(ctx context.Context, dir string) error {
	cmd := e.command(ctx, dir, "down")
	cmd.Stdout = e.out
	cmd.Stderr = e.errOut
	e.log.Debug("compose down", zap.String("dir", dir))
	return cmd.Run()
}

// Status reports the container state of the stack in dir. Any failure to
// ask or parse degrades to stopped/0/0, matching the advisory nature of
// status output.
func (e *Executor) Status(ctx context.Context, dir string) StackStatus {
	cmd := e.command(ctx, dir, "ps", "--format", "json")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		e.log.Debug("compose ps failed", zap.String("dir", dir), zap.Error(err))
		return StackStatus{State: StateStopped}
	}
	return parsePSOutput(stdout.Bytes())
}

// parsePSOutput handles both output shapes of compose ps --format json:
// one JSON object per line, or a single JSON array.
func parsePSOutput(raw []byte) StackStatus {
	type container struct {
		State string `json:"State"`
	}
	var containers []container

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return StackStatus{State: StateStopped}
	}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &containers); err != nil {
			return StackStatus{State: StateStopped}
		}
	} else {
		for _, line := range bytes.Split(trimmed, []byte("\n")) {
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			var c container
			if err := json.Unmarshal(line, &c); err != nil {
				continue
			}
			containers = append(containers, c)
		}
	}

	st := StackStatus{State: StateStopped, Total: len(containers)}
	for _, c := range containers {
		if strings.EqualFold(c.State, "running") {
			st.Running++
		}
	}
	if st.Running > 0 {
		st.State = StateRunning
	}
	return st
}

// LogsArgs builds the full logs argv (base command included) for the tailer.
func (e *Executor) LogsArgs(opts LogOptions) []string {
	argv := append(append([]string(nil), e.base...), "logs")
	if opts.Follow {
		argv = append(argv, "--follow")
	}
	if opts.Since != "" {
		argv = append(argv, "--since", opts.Since)
	}
	if opts.Until != "" {
		argv = append(argv, "--until", opts.Until)
	}
	if opts.Tail != "" {
		argv = append(argv, "--tail", opts.Tail)
	}
	if opts.Timestamps {
		argv = append(argv, "--timestamps")
	}
	return argv
}
