// helpers.go holds the shared command plumbing: registry construction,
// executor wiring, and best-effort run history recording.
package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/stackctl/internal/compose"
	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/logging"
	"github.com/example/stackctl/internal/stack"
)

// buildRegistry completes the options, builds the logger, and discovers the
// registry. Every command goes through here so discovery happens exactly
// once per invocation.
func buildRegistry(opts *config.Options) (*stack.Registry, *zap.Logger, error) {
	if err := opts.Complete(); err != nil {
		return nil, nil, err
	}
	log, err := logging.New(opts.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	reg, err := stack.Discover(opts.Root, log)
	if err != nil {
		return nil, nil, err
	}
	return reg, log, nil
}

func buildExecutor(cmd *cobra.Command, opts *config.Options, log *zap.Logger) (*compose.Executor, error) {
	return compose.NewExecutor(opts.ComposeCommand, cmd.OutOrStdout(), cmd.ErrOrStderr(), log)
}

// recordRun appends a batch to the run history. Failures are logged and
// swallowed: history is advisory and must never fail a lifecycle command.
func recordRun(ctx context.Context, log *zap.Logger, root, command string, started time.Time, results []stack.StackResult) {
	if len(results) == 0 {
		return
	}
	store, err := stack.OpenStateStore(root)
	if err != nil {
		log.Warn("run history unavailable", zap.Error(err))
		return
	}
	defer store.Close()
	rec := stack.RunRecord{
		ID:         stack.NewRunID(started),
		Command:    command,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Results:    results,
	}
	if err := store.RecordRun(ctx, rec); err != nil {
		log.Warn("failed to record run", zap.Error(err))
	}
}

// stackServices lists the services the stack's manifest declares.
func stackServices(s *stack.Stack, log *zap.Logger) ([]string, error) {
	names, err := compose.ServiceNames(s.Dir)
	if err != nil {
		return nil, err
	}
	log.Debug("manifest services", zap.String("stack", s.Name), zap.Strings("services", names))
	return names, nil
}

func stateStoreExists(root string) bool {
	_, err := os.Stat(stack.StatePath(root))
	return err == nil
}
