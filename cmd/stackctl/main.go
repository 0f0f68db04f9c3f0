// main.go bootstraps stackctl: it builds the root Cobra command, wires viper
// config/env defaults, and executes with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := config.NewOptions()
	cmd := &cobra.Command{
		Use:           "stackctl",
		Short:         "Manage docker compose stacks with metadata",
		Long:          "stackctl discovers docker compose stacks under a root directory, attaches per-stack metadata, and drives lifecycle commands over selections of stacks in deterministic order.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newListCommand(opts),
		newShowCommand(opts),
		newUpCommand(opts),
		newDownCommand(opts),
		newRestartCommand(opts),
		newStatusCommand(opts),
		newSearchCommand(opts),
		newAutostartCommand(opts),
		newValidateCommand(opts),
		newTagCommand(opts),
		newCategoryCommand(opts),
		newLogsCommand(opts),
		newRunsCommand(opts),
	)
	bindViper(cmd)
	return cmd
}

// bindViper lets STACKCTL_* environment variables and an optional config
// file provide defaults for any flag the user did not set explicitly.
func bindViper(root *cobra.Command) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("STACKCTL")
	v.AutomaticEnv()
	configFile := os.Getenv("STACKCTL_CONFIG")
	configureConfigFile(v, configFile)

	commands := append([]*cobra.Command{root}, root.Commands()...)
	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		if err := readConfigFile(v, configFile != ""); err != nil {
			cobra.CheckErr(err)
		}
		for _, cmd := range commands {
			for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "stackctl"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "stackctl"))
		add(filepath.Join(home, ".stackctl"))
	}
	return dirs
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	var notFound *stack.NotFoundError
	switch {
	case errors.As(err, &notFound):
		message = fmt.Sprintf("%s\nHint: run 'stackctl list' to see discovered stacks.", err)
	case errors.Is(err, stack.ErrNoSelection):
		message = fmt.Sprintf("%s\nHint: lifecycle commands need a target; try a stack name or --all.", err)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}
