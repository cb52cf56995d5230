package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanjosephkamp/openlist/internal/dictionary"
)

func TestBackend_Configured(t *testing.T) {
	assert.False(t, NewCollegiate(Config{}).Configured())
	assert.True(t, NewCollegiate(Config{APIKey: "test-key"}).Configured())
	assert.Equal(t, CollegiateName, NewCollegiate(Config{}).Name())
	assert.Equal(t, MedicalName, NewMedical(Config{}).Name())
}

func TestBackend_Lookup(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantFound  bool
		wantErr    string
	}{
		{
			name:       "entry response",
			statusCode: http.StatusOK,
			body:       `[{"meta": {"id": "example", "stems": ["example"]}, "hwi": {"hw": "ex*am*ple"}, "fl": "noun", "shortdef": ["a pattern"]}]`,
			wantFound:  true,
		},
		{
			name:       "suggestions response",
			statusCode: http.StatusOK,
			body:       `["receive", "received"]`,
			wantFound:  false,
		},
		{
			name:       "server error is surfaced with status code",
			statusCode: http.StatusInternalServerError,
			body:       `upstream broken`,
			wantErr:    "status code: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/example", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			backend := NewCollegiate(Config{
				BaseURL: server.URL,
				APIKey:  "test-key",
			})
			defer func() {
				require.NoError(t, backend.Close())
			}()

			got, err := backend.Lookup(context.Background(), "example")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, got.Found)
			assert.Equal(t, "example", got.Word)
		})
	}
}

func TestBackend_Lookup_cache(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`[{"meta": {"id": "example", "stems": ["example"]}, "hwi": {"hw": "ex*am*ple"}, "fl": "noun", "shortdef": ["a pattern"]}]`))
	}))
	defer server.Close()

	backend := NewCollegiate(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Cache:   dictionary.NewFileCache(t.TempDir()),
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := backend.Lookup(ctx, "example")
		require.NoError(t, err)
		assert.True(t, got.Found)
		assert.Equal(t, "example", got.Headword)
	}
	assert.Equal(t, 1, requests)
}

func TestBackend_Lookup_requestDelay(t *testing.T) {
	var timestamps []time.Time
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timestamps = append(timestamps, time.Now())
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	backend := NewCollegiate(Config{
		BaseURL:      server.URL,
		APIKey:       "test-key",
		RequestDelay: 30 * time.Millisecond,
	})
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := backend.Lookup(ctx, "example")
		require.NoError(t, err)
	}

	require.Len(t, timestamps, 3)
	for i := 1; i < len(timestamps); i++ {
		assert.GreaterOrEqual(t, timestamps[i].Sub(timestamps[i-1]), 25*time.Millisecond)
	}
}

func TestBackend_Lookup_throttleCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	backend := NewCollegiate(Config{
		BaseURL:      server.URL,
		APIKey:       "test-key",
		RequestDelay: time.Minute,
	})
	ctx := context.Background()
	_, err := backend.Lookup(ctx, "first")
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = backend.Lookup(cancelled, "second")
	assert.ErrorIs(t, err, context.Canceled)
}
