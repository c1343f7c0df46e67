// Command flowgridctl is the minimal runnable entry point for flowgrid: it
// loads a JSON configuration document, populates the example-module
// registry, builds a plan, and runs it — the thin wrapper spec.md treats as
// an out-of-scope collaborator (§1), not a feature surface in its own
// right.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vk/flowgrid/examplemodules"
	"github.com/vk/flowgrid/internal/config"
	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/queryplan"
	"github.com/vk/flowgrid/internal/registry"
	"github.com/vk/flowgrid/internal/scheduler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath    string
		schedulerName string
		dotPath       string
	)

	cmd := &cobra.Command{
		Use:   "flowgridctl",
		Short: "Build and run a flowgrid dataflow plan from a JSON configuration document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.Context(), cmd.OutOrStdout(), configPath, schedulerName, dotPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the JSON configuration document (required)")
	cmd.Flags().StringVarP(&schedulerName, "scheduler", "s", "blocking", "scheduler to run the plan with: 'blocking' or 'signal'")
	cmd.Flags().StringVar(&dotPath, "dot", "", "optional path to write the plan's dependency graph in Graphviz DOT form")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runPlan(ctx context.Context, stdout io.Writer, configPath, schedulerName, dotPath string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx = ctxlog.WithLogger(ctx, logger)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("flowgridctl: reading config: %w", err)
	}
	doc, err := config.LoadJSON(data)
	if err != nil {
		return fmt.Errorf("flowgridctl: %w", err)
	}

	reg := registry.New()
	examplemodules.RegisterAll(reg)

	plan, err := queryplan.Build(ctx, doc, reg)
	if err != nil {
		return fmt.Errorf("flowgridctl: building plan: %w", err)
	}
	logger.Info("flowgridctl: plan built", "run_id", plan.RunID, "modules", len(plan.Modules()), "channels", plan.NumChannels())

	if dotPath != "" {
		f, err := os.Create(dotPath)
		if err != nil {
			return fmt.Errorf("flowgridctl: opening dot output: %w", err)
		}
		defer f.Close()
		if err := plan.WriteDot(f); err != nil {
			return fmt.Errorf("flowgridctl: writing dot: %w", err)
		}
	}

	var run func(ctx context.Context, extra ...any) error
	switch schedulerName {
	case "blocking", "":
		run = scheduler.NewBlocking(plan).Run
	case "signal":
		run = scheduler.NewSignal(plan).Run
	default:
		return fmt.Errorf("flowgridctl: unknown scheduler %q (want 'blocking' or 'signal')", schedulerName)
	}

	return run(ctx, stdout)
}
