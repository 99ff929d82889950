package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewViper_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.Equal(t, "music.mp3", cfg.Track)
	require.Equal(t, 300*time.Second, cfg.LoopEnd)
	require.Equal(t, 2*time.Second, cfg.Fade)
	require.False(t, cfg.AutoReset)
}

func TestNewViper_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BREATHE_FADE", "3s")
	t.Setenv("BREATHE_AUTO_RESET", "true")
	t.Setenv("BREATHE_LOG_LEVEL", "debug")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.Fade)
	require.True(t, cfg.AutoReset)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestNewViper_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `track: https://example.com/music.mp3
loop_end: 90s
window:
  width: 640
  height: 480
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/music.mp3", cfg.Track)
	require.Equal(t, 90*time.Second, cfg.LoopEnd)
	require.Equal(t, WindowConfig{Width: 640, Height: 480}, cfg.Window)
	require.Equal(t, 2*time.Second, cfg.Fade, "unset keys keep defaults")
}

func TestNewViper_ExplicitMissingFileFails(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := map[string]string{
		"BREATHE_TRACK":     " ",
		"BREATHE_FADE":      "-1s",
		"BREATHE_LOG_LEVEL": "chatty",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			v, err := NewViper("")
			require.NoError(t, err)
			_, err = Load(v)
			require.Error(t, err)
		})
	}
}

func TestWriteDefault_RoundTripsAndRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "breathe.yaml")

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "track: music.mp3")
	require.Contains(t, string(data), "loop_end: 5m0s")
	require.Contains(t, string(data), "fade: 2s")

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)

	err = WriteDefault(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestWriteDefault_LeavesExistingFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breathe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("track: mine.flac\n"), 0o600))

	err := WriteDefault(path)
	require.ErrorContains(t, err, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "track: mine.flac\n", string(data))
}

func TestWriteDefault_OnlyOneConcurrentWriterWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breathe.yaml")

	const writers = 8
	errs := make(chan error, writers)
	for range writers {
		go func() { errs <- WriteDefault(path) }()
	}
	created := 0
	for range writers {
		if err := <-errs; err == nil {
			created++
		} else {
			require.ErrorContains(t, err, "already exists")
		}
	}
	require.Equal(t, 1, created)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	logger.Info("hidden")
	logger.Warn("shown", "key", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown key=1")

	path := filepath.Join(t.TempDir(), "breathe.log")
	logger, closer, err = NewLogger(LogConfig{Level: "debug", File: path}, &buf)
	require.NoError(t, err)
	logger.Debug("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")

	_, _, err = NewLogger(LogConfig{Level: "loud"}, &buf)
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}
