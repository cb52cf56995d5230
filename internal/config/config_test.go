package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		want              *Config
		wantErrorContains string
	}{
		{
			name:          "defaults without a config file",
			configContent: "",
			want: &Config{
				Lists: ListsConfig{
					Store:     "file",
					Directory: "data",
				},
				Database: DatabaseConfig{
					Host:     "localhost",
					Port:     3306,
					Database: "openlist",
					Username: "user",
				},
				Dictionaries: DictionariesConfig{
					MerriamWebster: MerriamWebsterConfig{
						DailyLimit:     1000,
						RequestDelayMS: 100,
					},
					MerriamWebsterMedical: MerriamWebsterConfig{
						DailyLimit:     1000,
						RequestDelayMS: 100,
					},
					TimeoutSeconds: 30,
					MaxRetries:     3,
				},
				Sweep: SweepConfig{
					DailyLimit:     1000,
					CheckpointFile: filepath.Join("data", "validation_progress.json"),
				},
				Discovery: DiscoveryConfig{
					Wordnik: WordnikConfig{
						LookbackDays:   30,
						DailyLimit:     100,
						RequestDelayMS: 100,
					},
				},
				Outputs: OutputsConfig{
					Directory: "output",
				},
			},
		},
		{
			name: "config file overrides and environment keys",
			configContent: `lists:
  store: mysql
  directory: custom/data
dictionaries:
  merriam_webster:
    daily_limit: 500
    request_delay_ms: 200
sweep:
  daily_limit: 50
  checkpoint_file: custom/progress.json
discovery:
  wordnik:
    lookback_days: 7
`,
			env: map[string]string{
				"MW_API_KEY":      "mw-key",
				"WORDNIK_API_KEY": "wordnik-key",
				"DB_PASSWORD":     "secret",
			},
			want: &Config{
				Lists: ListsConfig{
					Store:     "mysql",
					Directory: "custom/data",
				},
				Database: DatabaseConfig{
					Host:     "localhost",
					Port:     3306,
					Database: "openlist",
					Username: "user",
					Password: "secret",
				},
				Dictionaries: DictionariesConfig{
					MerriamWebster: MerriamWebsterConfig{
						Key:            "mw-key",
						DailyLimit:     500,
						RequestDelayMS: 200,
					},
					MerriamWebsterMedical: MerriamWebsterConfig{
						DailyLimit:     1000,
						RequestDelayMS: 100,
					},
					TimeoutSeconds: 30,
					MaxRetries:     3,
				},
				Sweep: SweepConfig{
					DailyLimit:     50,
					CheckpointFile: "custom/progress.json",
				},
				Discovery: DiscoveryConfig{
					Wordnik: WordnikConfig{
						Key:            "wordnik-key",
						LookbackDays:   7,
						DailyLimit:     100,
						RequestDelayMS: 100,
					},
				},
				Outputs: OutputsConfig{
					Directory: "output",
				},
			},
		},
		{
			name: "invalid store value fails validation",
			configContent: `lists:
  store: postgres
`,
			wantErrorContains: "invalid configuration",
		},
		{
			name: "lookback days above the cap fails validation",
			configContent: `discovery:
  wordnik:
    lookback_days: 90
`,
			wantErrorContains: "invalid configuration",
		},
		{
			name:              "invalid YAML format",
			configContent:     "lists: [unbalanced",
			wantErrorContains: "could not be read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			configFile := ""
			if tt.configContent != "" {
				configFile = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(configFile, []byte(tt.configContent), 0644))
			} else {
				// Point at an empty directory so a developer's local config
				// cannot leak into the test.
				wd, err := os.Getwd()
				require.NoError(t, err)
				require.NoError(t, os.Chdir(t.TempDir()))
				t.Cleanup(func() {
					_ = os.Chdir(wd)
				})
			}

			loader, err := NewConfigLoader(configFile)
			require.NoError(t, err)
			got, err := loader.Load()
			if tt.wantErrorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
