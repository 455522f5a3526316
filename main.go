package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qgatedeck/internal/backend"
	"qgatedeck/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"endpoint":  "backend.endpoint",
	"timeout":   "backend.timeout",
	"log-file":  "log.file",
	"log-level": "log.level",
	"serialize": "apply.serialize",
}

// newRootCmd wires the CLI. The root command runs the TUI; apply runs gates headless.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        config.Config
	)

	rootCmd := &cobra.Command{
		Use:           "qgatedeck",
		Short:         "single-qubit gate palette backed by a remote apply_gate service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := config.New(configPath)
			for flag, key := range flagKeys {
				if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(flag)); err != nil {
					return fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file path (yaml or toml)")
	pf.String("endpoint", "", "apply_gate endpoint URL")
	pf.Duration("timeout", 0, "request timeout (0 means none)")
	pf.String("log-file", "", "log file used while the TUI is running")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.Bool("serialize", false, "ignore gate presses while a request is in flight")

	applyCmd := &cobra.Command{
		Use:   "apply GATE...",
		Short: "apply gates in order starting from |0⟩ and print the final state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			client := newClient(cfg, logger)
			return runApply(cmd.Context(), cmd.OutOrStdout(), logger, client, args)
		},
	}

	rootCmd.AddCommand(applyCmd)
	return rootCmd
}

func newClient(cfg config.Config, logger *log.Logger) *backend.Client {
	return backend.NewClient(backend.Config{
		Endpoint: cfg.Backend.Endpoint,
		Timeout:  cfg.Backend.Timeout,
		Logger:   logger,
	})
}

// runTUI starts the interactive program. Logs go to a file so they do not draw over the screen.
func runTUI(ctx context.Context, cfg config.Config) error {
	f, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer f.Close()

	logger, err := newLogger(f, cfg.Log.Level)
	if err != nil {
		return err
	}
	client := newClient(cfg, logger)
	logger.Info("starting", "endpoint", client.Endpoint(), "serialize", cfg.Apply.Serialize)

	m := NewModel(client,
		WithLogger(logger),
		WithSerialize(cfg.Apply.Serialize),
		WithContext(ctx),
	)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// runApply applies gates one after another from the ground state and prints the result as JSON.
// It stops at the first failure.
func runApply(ctx context.Context, out io.Writer, logger *log.Logger, client backend.Applier, gates []string) error {
	state := backend.InitialState()
	for pos, g := range gates {
		gate := strings.ToUpper(g)
		next, err := client.ApplyGate(ctx, gate, state)
		if err != nil {
			logger.Error("There was an error applying the gate!", "gate", gate, "position", pos, "err", err)
			return fmt.Errorf("apply %s at position %d: %w", gate, pos, err)
		}
		state = next
	}
	fmt.Fprintln(out, stateJSON(state))
	return nil
}
