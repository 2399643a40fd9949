package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestLoad_MissingDefaultFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendStatic, cfg.Search.Backend)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Latency.Duration)
	assert.Equal(t, 80*time.Millisecond, cfg.UI.Tick.Duration)
	assert.Equal(t, DirectionLeft, cfg.LogoStrip.Direction)
	assert.Equal(t, 48, cfg.LogoStrip.Gap)
	require.Len(t, cfg.Nav, 3)
	assert.Equal(t, []string{"About", "Projects", "Contact"}, []string{cfg.Nav[0].Label, cfg.Nav[1].Label, cfg.Nav[2].Label})
	assert.Len(t, cfg.Nav[2].Links, 3)
	assert.Len(t, cfg.Logos, 6)
}

func TestLoad_ExplicitMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
[search]
backend = "remote"
latency = "50ms"
remote_url = "http://127.0.0.1:9999"
timeout = "1s"

[logo_strip]
direction = "right"
speed = 40

[[nav]]
label = "Docs"
bg_color = "#000000"
text_color = "#ffffff"
  [[nav.links]]
  label = "Guides"
  href = "/guides"

[[logos]]
title = "Go"
href = "https://go.dev"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendRemote, cfg.Search.Backend)
	assert.Equal(t, 50*time.Millisecond, cfg.Search.Latency.Duration)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Search.RemoteURL)
	assert.Equal(t, time.Second, cfg.Search.Timeout.Duration)
	assert.Equal(t, DirectionRight, cfg.LogoStrip.Direction)
	assert.Equal(t, 40, cfg.LogoStrip.Speed)
	assert.Equal(t, 48, cfg.LogoStrip.Gap, "unset keys keep defaults")

	require.Len(t, cfg.Nav, 1)
	assert.Equal(t, "Docs", cfg.Nav[0].Label)
	require.Len(t, cfg.Nav[0].Links, 1)
	assert.Equal(t, "/guides", cfg.Nav[0].Links[0].Href)
	require.Len(t, cfg.Logos, 1)
	assert.Equal(t, "Go", cfg.Logos[0].Title)
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[search\nbackend ="))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "[search]\nlatency = \"soon\"\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"unknown backend", func(c *Config) { c.Search.Backend = "bleve" }, "unknown search backend"},
		{"remote needs url", func(c *Config) { c.Search.Backend = BackendRemote; c.Search.RemoteURL = "" }, "remote_url"},
		{"negative latency", func(c *Config) { c.Search.Latency.Duration = -time.Second }, "latency"},
		{"zero timeout", func(c *Config) { c.Search.Timeout.Duration = 0 }, "timeout"},
		{"bad direction", func(c *Config) { c.LogoStrip.Direction = "up" }, "direction"},
		{"negative gap", func(c *Config) { c.LogoStrip.Gap = -1 }, "gap"},
		{"nav label required", func(c *Config) { c.Nav[0].Label = " " }, "label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"AMPHI_ADDR":       "8080",
		"AMPHI_BACKEND":    "REMOTE",
		"AMPHI_REMOTE_URL": "http://search.local",
		"AMPHI_LATENCY":    "10ms",
		"AMPHI_MOUSE":      "false",
		"AMPHI_LOG_FILE":   "/tmp/amphi-test.log",
	}
	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, BackendRemote, cfg.Search.Backend)
	assert.Equal(t, "http://search.local", cfg.Search.RemoteURL)
	assert.Equal(t, 10*time.Millisecond, cfg.Search.Latency.Duration)
	assert.False(t, cfg.UI.Mouse)
	assert.Equal(t, "/tmp/amphi-test.log", cfg.Log.File)
}

func TestApplyEnv_NoVariablesKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, noEnv))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"latency", "AMPHI_LATENCY", "soon"},
		{"mouse", "AMPHI_MOUSE", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ApplyEnv(cfg, func(k string) (string, bool) {
				if k == tt.key {
					return tt.val, true
				}
				return "", false
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_InvalidEnvValueIsAnError(t *testing.T) {
	t.Setenv("AMPHI_LATENCY", "soon")

	_, err := Load(writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AMPHI_LATENCY")
}

func TestLoad_MalformedDotEnvIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NOT-A-KEY=1\n"), 0o600))
	t.Chdir(dir)

	_, err := Load(writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
}

func TestLoad_UnreadableDotEnvIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o755))
	t.Chdir(dir)

	_, err := Load(writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(writeConfig(t, ""))
	assert.NoError(t, err)
}
