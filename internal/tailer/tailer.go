// File: internal/tailer/tailer.go
// Brief: Multi-stack compose log multiplexer.

// Package tailer streams docker compose logs from several stacks at once,
// prefixing each line with its stack name and merging everything onto one
// writer. Workers are cancelled together and lines are delivered whole.
package tailer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
)

const (
	scannerInitial = 64 * 1024
	scannerMax     = 1024 * 1024
)

var palette = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgRed),
}

// Target is one stack to stream from.
type Target struct {
	Name string
	Dir  string
}

// Tailer runs one compose logs process per target and merges their output.
type Tailer struct {
	targets []Target
	argv    []string
	out     io.Writer
	prefix  bool
}

// New builds a tailer over targets running argv (the full compose logs
// command line) in each target's directory. With a single target the
// output is passed through unprefixed, matching direct invocation.
func New(targets []Target, argv []string, out io.Writer) *Tailer {
	return &Tailer{
		targets: targets,
		argv:    argv,
		out:     out,
		prefix:  len(targets) > 1,
	}
}

// Run streams until every process exits or ctx is cancelled. A failing
// stack reports its error inline and does not stop the others.
func (t *Tailer) Run(ctx context.Context) error {
	if len(t.targets) == 0 {
		return nil
	}
	lines := make(chan string, 256)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for line := range lines {
			fmt.Fprintln(t.out, line)
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	for i, target := range t.targets {
		target := target
		prefix := ""
		if t.prefix {
			c := palette[i%len(palette)]
			prefix = c.Sprintf("[%s]", target.Name) + " "
		}
		g.Go(func() error {
			return t.streamTarget(ctx, target, prefix, lines)
		})
	}
	err := g.Wait()
	close(lines)
	<-writerDone
	if ctx.Err() != nil {
		// Cancellation (user interrupt) is a normal way to stop following.
		return nil
	}
	return err
}

func (t *Tailer) streamTarget(ctx context.Context, target Target, prefix string, lines chan<- string) error {
	cmd := exec.CommandContext(ctx, t.argv[0], t.argv[1:]...)
	cmd.Dir = target.Dir

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw
	if err := cmd.Start(); err != nil {
		emit(ctx, lines, prefix+fmt.Sprintf("error streaming logs: %v", err))
		return nil
	}
	go func() {
		pw.CloseWithError(cmd.Wait())
	}()
	stream(ctx, pr, prefix, lines)
	return nil
}

// stream scans r line by line and forwards prefixed lines until EOF or
// cancellation. It never splits a line across sends.
func stream(ctx context.Context, r io.Reader, prefix string, lines chan<- string) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scannerInitial), scannerMax)
	for scanner.Scan() {
		if !emit(ctx, lines, prefix+scanner.Text()) {
			return
		}
	}
}

func emit(ctx context.Context, lines chan<- string, line string) bool {
	select {
	case lines <- line:
		return true
	case <-ctx.Done():
		return false
	}
}
