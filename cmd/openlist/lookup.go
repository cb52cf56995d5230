package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ryanjosephkamp/openlist/internal/config"
	"github.com/ryanjosephkamp/openlist/internal/dictionary"
	"github.com/ryanjosephkamp/openlist/internal/dictionary/freedict"
	"github.com/ryanjosephkamp/openlist/internal/dictionary/mw"
	"github.com/ryanjosephkamp/openlist/internal/words"
)

type backendName string

func (b *backendName) Set(val string) error {
	for _, name := range allBackendNames {
		if val == string(name) {
			*b = name
			return nil
		}
	}
	return fmt.Errorf("invalid backend: %s", val)
}

func (b backendName) String() string {
	return string(b)
}

func (b *backendName) Type() string {
	return "backend"
}

const backendAuto backendName = "auto"

var (
	_               pflag.Value = (*backendName)(nil)
	allBackendNames             = []backendName{
		backendAuto,
		backendName(mw.CollegiateName),
		backendName(mw.MedicalName),
		backendName(freedict.BackendName),
	}
)

func newLookupCommand() *cobra.Command {
	backend := backendAuto
	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look a word up and print the verification verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := words.Normalize(args[0])
			if check := words.Check(word); !check.IsValid {
				return fmt.Errorf("word %q fails the structural filter: %s", word, check.Reason)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ctx := cmd.Context()
			var result dictionary.LookupResult
			if backend == backendAuto {
				result, err = newDictionaryClient(cfg).Lookup(ctx, word)
			} else {
				result, err = lookupSingleBackend(ctx, cfg, backend, word)
			}
			if err != nil {
				return fmt.Errorf("lookup > %w", err)
			}

			outcome := dictionary.NewVerifier().Verify(word, result)
			fmt.Printf("word: %s\n", word)
			fmt.Printf("verdict: %s\n", outcome)
			if result.Inconclusive {
				fmt.Println("no backend could answer within budget")
				return nil
			}
			fmt.Printf("backend: %s\n", result.SourceBackend)
			if result.Found {
				fmt.Printf("headword: %s\n", result.Headword)
				if result.PartOfSpeech != "" {
					fmt.Printf("part of speech: %s\n", result.PartOfSpeech)
				}
				if result.Definition != "" {
					fmt.Printf("definition: %s\n", result.Definition)
				}
				if result.Pronunciation != "" {
					fmt.Printf("pronunciation: %s\n", result.Pronunciation)
				}
				if result.Etymology != "" {
					fmt.Printf("etymology: %s\n", result.Etymology)
				}
			}
			return nil
		},
	}
	command.Flags().Var(&backend, "backend", fmt.Sprintf("Backend to use. Possible values are %v", allBackendNames))
	return command
}

func lookupSingleBackend(ctx context.Context, cfg *config.Config, name backendName, word string) (dictionary.LookupResult, error) {
	timeout := time.Duration(cfg.Dictionaries.TimeoutSeconds) * time.Second
	var cache *dictionary.FileCache
	if cfg.Dictionaries.CacheDir != "" {
		cache = dictionary.NewFileCache(cfg.Dictionaries.CacheDir)
	}
	var backend dictionary.Backend
	switch string(name) {
	case mw.CollegiateName:
		backend = mw.NewCollegiate(mw.Config{
			BaseURL: cfg.Dictionaries.MerriamWebster.BaseURL,
			APIKey:  cfg.Dictionaries.MerriamWebster.Key,
			Timeout: timeout,
			Cache:   cache,
		})
	case mw.MedicalName:
		backend = mw.NewMedical(mw.Config{
			BaseURL: cfg.Dictionaries.MerriamWebsterMedical.BaseURL,
			APIKey:  cfg.Dictionaries.MerriamWebsterMedical.Key,
			Timeout: timeout,
			Cache:   cache,
		})
	default:
		backend = freedict.NewBackend(freedict.Config{
			BaseURL: cfg.Dictionaries.FreeDictionary.BaseURL,
			Timeout: timeout,
		})
	}
	if !backend.Configured() {
		return dictionary.LookupResult{}, fmt.Errorf("backend %s is not configured", name)
	}
	result, err := backend.Lookup(ctx, word)
	if err != nil {
		return dictionary.LookupResult{}, err
	}
	result.Word = word
	result.SourceBackend = backend.Name()
	return result, nil
}
