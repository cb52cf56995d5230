// Package config loads the application configuration from a YAML file,
// environment variables and defaults.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Lists        ListsConfig        `mapstructure:"lists"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Sweep        SweepConfig        `mapstructure:"sweep"`
	Discovery    DiscoveryConfig    `mapstructure:"discovery"`
	Outputs      OutputsConfig      `mapstructure:"outputs"`
}

type ListsConfig struct {
	// Store selects where the word lists live: "file" or "mysql".
	Store     string `mapstructure:"store" validate:"oneof=file mysql"`
	Directory string `mapstructure:"directory"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type DictionariesConfig struct {
	MerriamWebster        MerriamWebsterConfig `mapstructure:"merriam_webster"`
	MerriamWebsterMedical MerriamWebsterConfig `mapstructure:"merriam_webster_medical"`
	FreeDictionary        FreeDictionaryConfig `mapstructure:"free_dictionary"`
	// CacheDir enables the on-disk response cache when non-empty.
	CacheDir       string `mapstructure:"cache_dir"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	MaxRetries     uint   `mapstructure:"max_retries" validate:"gte=1"`
}

type MerriamWebsterConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Key            string `mapstructure:"key"`
	DailyLimit     int64  `mapstructure:"daily_limit"`
	RequestDelayMS int    `mapstructure:"request_delay_ms" validate:"gte=0"`
}

type FreeDictionaryConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type SweepConfig struct {
	DailyLimit     int    `mapstructure:"daily_limit" validate:"gte=0"`
	CheckpointFile string `mapstructure:"checkpoint_file"`
}

type DiscoveryConfig struct {
	RSSFeedURL  string        `mapstructure:"rss_feed_url"`
	NewWordsURL string        `mapstructure:"new_words_url"`
	Wordnik     WordnikConfig `mapstructure:"wordnik"`
}

type WordnikConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Key            string `mapstructure:"key"`
	LookbackDays   int    `mapstructure:"lookback_days" validate:"gte=0,lte=30"`
	DailyLimit     int64  `mapstructure:"daily_limit"`
	RequestDelayMS int    `mapstructure:"request_delay_ms" validate:"gte=0"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/openlist")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("lists.store", "file")
	v.SetDefault("lists.directory", "data")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "openlist")
	v.SetDefault("database.username", "user")
	v.SetDefault("dictionaries.merriam_webster.base_url", "")
	v.SetDefault("dictionaries.merriam_webster.daily_limit", 1000)
	v.SetDefault("dictionaries.merriam_webster.request_delay_ms", 100)
	v.SetDefault("dictionaries.merriam_webster_medical.base_url", "")
	v.SetDefault("dictionaries.merriam_webster_medical.daily_limit", 1000)
	v.SetDefault("dictionaries.merriam_webster_medical.request_delay_ms", 100)
	v.SetDefault("dictionaries.free_dictionary.base_url", "")
	v.SetDefault("dictionaries.timeout_seconds", 30)
	v.SetDefault("dictionaries.max_retries", 3)
	v.SetDefault("sweep.daily_limit", 1000)
	v.SetDefault("sweep.checkpoint_file", filepath.Join("data", "validation_progress.json"))
	v.SetDefault("discovery.wordnik.lookback_days", 30)
	v.SetDefault("discovery.wordnik.daily_limit", 100)
	v.SetDefault("discovery.wordnik.request_delay_ms", 100)
	v.SetDefault("outputs.directory", "output")

	// API keys and the database password come from the environment only,
	// never from the config file.
	if err := v.BindEnv("dictionaries.merriam_webster.key", "MW_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind MW_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.merriam_webster_medical.key", "MW_MEDICAL_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind MW_MEDICAL_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("discovery.wordnik.key", "WORDNIK_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDNIK_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
