package main

import (
	"fmt"
	"time"

	"github.com/ryanjosephkamp/openlist/internal/config"
	"github.com/ryanjosephkamp/openlist/internal/database"
	"github.com/ryanjosephkamp/openlist/internal/dictionary"
	"github.com/ryanjosephkamp/openlist/internal/dictionary/freedict"
	"github.com/ryanjosephkamp/openlist/internal/dictionary/mw"
	"github.com/ryanjosephkamp/openlist/internal/wordlist"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newStore builds the word list store the configuration selects.
func newStore(cfg *config.Config) (wordlist.Store, error) {
	switch cfg.Lists.Store {
	case "mysql":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		return wordlist.NewDBStore(db), nil
	default:
		return wordlist.NewFileStore(cfg.Lists.Directory), nil
	}
}

// newDictionaryClient builds the backend chain, most authoritative first.
func newDictionaryClient(cfg *config.Config) *dictionary.Client {
	timeout := time.Duration(cfg.Dictionaries.TimeoutSeconds) * time.Second
	var cache *dictionary.FileCache
	if cfg.Dictionaries.CacheDir != "" {
		cache = dictionary.NewFileCache(cfg.Dictionaries.CacheDir)
	}
	collegiate := mw.NewCollegiate(mw.Config{
		BaseURL:      cfg.Dictionaries.MerriamWebster.BaseURL,
		APIKey:       cfg.Dictionaries.MerriamWebster.Key,
		RequestDelay: time.Duration(cfg.Dictionaries.MerriamWebster.RequestDelayMS) * time.Millisecond,
		Timeout:      timeout,
		Cache:        cache,
	})
	medical := mw.NewMedical(mw.Config{
		BaseURL:      cfg.Dictionaries.MerriamWebsterMedical.BaseURL,
		APIKey:       cfg.Dictionaries.MerriamWebsterMedical.Key,
		RequestDelay: time.Duration(cfg.Dictionaries.MerriamWebsterMedical.RequestDelayMS) * time.Millisecond,
		Timeout:      timeout,
		Cache:        cache,
	})
	free := freedict.NewBackend(freedict.Config{
		BaseURL: cfg.Dictionaries.FreeDictionary.BaseURL,
		Timeout: timeout,
	})

	policy := dictionary.DefaultRetryPolicy()
	if cfg.Dictionaries.MaxRetries > 0 {
		policy.MaxAttempts = cfg.Dictionaries.MaxRetries
	}
	return dictionary.NewClient([]dictionary.BackendBudget{
		{Backend: collegiate, DailyLimit: cfg.Dictionaries.MerriamWebster.DailyLimit},
		{Backend: medical, DailyLimit: cfg.Dictionaries.MerriamWebsterMedical.DailyLimit},
		{Backend: free},
	}, policy)
}
