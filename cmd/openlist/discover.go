package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryanjosephkamp/openlist/internal/discovery"
	"github.com/ryanjosephkamp/openlist/internal/sweep"
	"github.com/ryanjosephkamp/openlist/internal/wordlist"
)

func newDiscoverCommand() *cobra.Command {
	var (
		wordsFile string
		limit     int
		seed      int64
	)
	command := &cobra.Command{
		Use:   "discover",
		Short: "Discover new candidate words and validate them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			timeout := time.Duration(cfg.Dictionaries.TimeoutSeconds) * time.Second
			sources := []discovery.Source{
				discovery.NewRSSFeed(cfg.Discovery.RSSFeedURL, timeout),
				discovery.NewNewWordsPage(cfg.Discovery.NewWordsURL, timeout),
				discovery.NewWordnik(discovery.WordnikConfig{
					BaseURL:      cfg.Discovery.Wordnik.BaseURL,
					APIKey:       cfg.Discovery.Wordnik.Key,
					LookbackDays: cfg.Discovery.Wordnik.LookbackDays,
					RequestDelay: time.Duration(cfg.Discovery.Wordnik.RequestDelayMS) * time.Millisecond,
					DailyLimit:   cfg.Discovery.Wordnik.DailyLimit,
					Timeout:      timeout,
				}),
			}
			if wordsFile != "" {
				sources = append(sources, discovery.NewFileSource(wordsFile))
			}

			ctx := cmd.Context()
			candidates, err := discovery.NewDiscoverer(sources...).Discover(ctx)
			if err != nil {
				return fmt.Errorf("discoverer.Discover > %w", err)
			}
			fmt.Printf("discovered %d candidate words\n", len(candidates))

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
			result, err := runner.RunDiscovered(ctx, candidates, sweep.Options{
				Limit: limit,
				Seed:  seed,
			})
			if err != nil {
				return fmt.Errorf("runner.RunDiscovered > %w", err)
			}
			printRunSummary(result)

			return exportRun(cfg.Outputs.Directory, store, result)
		},
	}
	command.Flags().StringVar(&wordsFile, "words-file", "", "Extra newline-separated candidate word file")
	command.Flags().IntVar(&limit, "limit", 0, "Words to validate this run")
	command.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible candidate ordering")
	return command
}
