package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryanjosephkamp/openlist/internal/datasync"
	"github.com/ryanjosephkamp/openlist/internal/sweep"
	"github.com/ryanjosephkamp/openlist/internal/wordlist"
)

func newSweepCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "sweep",
		Short: "Validate words from the invalid list against dictionaries",
	}
	command.AddCommand(
		newSweepRunCommand(),
		newSweepResetCommand(),
		newSweepStatusCommand(),
	)
	return command
}

func newSweepRunCommand() *cobra.Command {
	var (
		limit      int
		sampleMode bool
		seed       int64
	)
	command := &cobra.Command{
		Use:   "run",
		Short: "Run a validation sweep over the invalid list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if limit == 0 {
				limit = cfg.Sweep.DailyLimit
			}

			store, err := newStore(cfg)
			if err != nil {
				return fmt.Errorf("newStore > %w", err)
			}
			runner := sweep.NewRunner(
				store,
				wordlist.NewReconciler(store),
				newDictionaryClient(cfg),
				sweep.NewFileCheckpoint(cfg.Sweep.CheckpointFile),
			)

			result, err := runner.Run(cmd.Context(), sweep.Options{
				Limit:      limit,
				SampleMode: sampleMode,
				Seed:       seed,
			})
			if err != nil {
				return fmt.Errorf("runner.Run > %w", err)
			}
			printRunSummary(result)

			return exportRun(cfg.Outputs.Directory, store, result)
		},
	}
	command.Flags().IntVar(&limit, "limit", 0, "Words to validate this run (default: sweep.daily_limit)")
	command.Flags().BoolVar(&sampleMode, "sample", false, "Pick candidates uniformly at random instead of by priority")
	command.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible candidate ordering")
	return command
}

func newSweepResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard sweep progress and start a new evaluation cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			checkpoint := sweep.NewFileCheckpoint(cfg.Sweep.CheckpointFile)
			if err := checkpoint.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("checkpoint.Reset > %w", err)
			}
			fmt.Println("sweep progress cleared")
			return nil
		},
	}
}

func newSweepStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print sweep progress for the current cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			checkpoint := sweep.NewFileCheckpoint(cfg.Sweep.CheckpointFile)
			progress, err := checkpoint.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("checkpoint.Load > %w", err)
			}

			store, err := newStore(cfg)
			if err != nil {
				return fmt.Errorf("newStore > %w", err)
			}
			if err := store.Load(cmd.Context()); err != nil {
				return fmt.Errorf("store.Load > %w", err)
			}
			validCount, invalidCount := store.Counts()

			fmt.Printf("valid words: %d\n", validCount)
			fmt.Printf("invalid words: %d\n", invalidCount)
			fmt.Printf("validated this cycle: %d\n", progress.ValidatedCount)
			fmt.Printf("promoted this cycle: %d\n", progress.PromotedCount)
			if !progress.LastRun.IsZero() {
				fmt.Printf("last run: %s\n", progress.LastRun.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func printRunSummary(result sweep.RunResult) {
	fmt.Printf("validated %d words in %s\n", result.Validated, result.Duration.Round(time.Second))
	fmt.Printf("  %s %d\n", color.GreenString("promoted:"), result.Promoted)
	fmt.Printf("  %s %d\n", color.RedString("still invalid:"), result.StillInvalid)
	if result.Inconclusive > 0 {
		fmt.Printf("  %s %d\n", color.YellowString("inconclusive:"), result.Inconclusive)
	}
	fmt.Printf("  remaining this cycle: %d\n", result.Remaining)
	for _, word := range result.PromotedWords {
		fmt.Printf("    %s\n", color.GreenString(word))
	}
}

// exportRun writes the changelog and statistics YAML files consumed by the
// release tooling.
func exportRun(outputDir string, store wordlist.Store, result sweep.RunResult) error {
	if len(result.Changes) > 0 {
		path, err := datasync.NewChangeLogSink(outputDir).Write(time.Now(), result.Changes)
		if err != nil {
			return fmt.Errorf("write changelog > %w", err)
		}
		fmt.Printf("changelog written to %s\n", path)
	}

	validCount, invalidCount := store.Counts()
	path, err := datasync.NewStatsSink(outputDir).Write(time.Now(), result, validCount, invalidCount)
	if err != nil {
		return fmt.Errorf("write stats > %w", err)
	}
	fmt.Printf("stats written to %s\n", path)
	return nil
}
