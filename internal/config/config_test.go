package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/27achang/2024WinterFinal/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    config.Config
		wantErr error
	}{
		{
			name:    "defaults",
			environ: map[string]string{},
			want: config.Config{
				LogLevel:       "warn",
				RollingDelay:   15 * time.Millisecond,
				StartingDonuts: 10,
			},
		},
		{
			name: "all set",
			environ: map[string]string{
				"CLUE_SEED":            "42",
				"CLUE_LOG_LEVEL":       "debug",
				"CLUE_ROLLING_DELAY":   "0s",
				"CLUE_NO_COLOR":        "true",
				"CLUE_STARTING_DONUTS": "3",
			},
			want: config.Config{
				Seed:           42,
				LogLevel:       "debug",
				NoColor:        true,
				StartingDonuts: 3,
			},
		},
		{
			name:    "unprefixed variables are ignored",
			environ: map[string]string{"SEED": "42"},
			want: config.Config{
				LogLevel:       "warn",
				RollingDelay:   15 * time.Millisecond,
				StartingDonuts: 10,
			},
		},
		{
			name:    "malformed seed",
			environ: map[string]string{"CLUE_SEED": "forty-two"},
			wantErr: config.ErrInvalid,
		},
		{
			name:    "unknown log level",
			environ: map[string]string{"CLUE_LOG_LEVEL": "loud"},
			wantErr: config.ErrInvalid,
		},
		{
			name:    "negative donuts",
			environ: map[string]string{"CLUE_STARTING_DONUTS": "-1"},
			wantErr: config.ErrInvalid,
		},
		{
			name:    "negative delay",
			environ: map[string]string{"CLUE_ROLLING_DELAY": "-5ms"},
			wantErr: config.ErrInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.Parse(tt.environ)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CLUE_STARTING_DONUTS=7\nCLUE_LOG_LEVEL=info\n"), 0o600))

	// Variables already in the environment win over the file.
	t.Setenv("CLUE_LOG_LEVEL", "error")
	t.Setenv("CLUE_STARTING_DONUTS", "")
	require.NoError(t, os.Unsetenv("CLUE_STARTING_DONUTS"))

	cfg, err := config.Load(filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.StartingDonuts)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, slog.LevelError, cfg.Level())
}
