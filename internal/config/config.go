package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"amphi/internal/domain"
)

const (
	BackendStatic = "static"
	BackendRemote = "remote"

	DirectionLeft  = "left"
	DirectionRight = "right"

	defaultConfigPath = "~/.config/amphi/config.toml"
	envPrefix         = "AMPHI_"
)

// Duration wraps time.Duration so it can be written as "300ms" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config represents the application configuration
type Config struct {
	Search    SearchConfig      `toml:"search"`
	UI        UISettings        `toml:"ui"`
	LogoStrip LogoStripConfig   `toml:"logo_strip"`
	Server    ServerConfig      `toml:"server"`
	Log       LogConfig         `toml:"log"`
	Nav       []domain.NavGroup `toml:"nav"`
	Logos     []domain.Logo     `toml:"logos"`
}

// SearchConfig selects and tunes the search backend
type SearchConfig struct {
	Backend   string   `toml:"backend"`
	Latency   Duration `toml:"latency"`
	RemoteURL string   `toml:"remote_url"`
	Timeout   Duration `toml:"timeout"`
}

// UISettings represents terminal UI configuration
type UISettings struct {
	Mouse bool     `toml:"mouse"`
	Color bool     `toml:"color"`
	Tick  Duration `toml:"tick"`
}

// LogoStripConfig parameterizes the partner marquee
type LogoStripConfig struct {
	Speed        int     `toml:"speed"` // pixels per second, 8px per cell
	Direction    string  `toml:"direction"`
	Gap          int     `toml:"gap"` // pixels
	PauseOnHover bool    `toml:"pause_on_hover"`
	FadeOut      bool    `toml:"fade_out"`
}

// ServerConfig configures `amphi serve`
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig configures the log file
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration that reproduces the stock page
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Backend:   BackendStatic,
			Latency:   Duration{300 * time.Millisecond},
			RemoteURL: "http://localhost:4002",
			Timeout:   Duration{2 * time.Second},
		},
		UI: UISettings{
			Mouse: true,
			Color: true,
			Tick:  Duration{80 * time.Millisecond},
		},
		LogoStrip: LogoStripConfig{
			Speed:        80,
			Direction:    DirectionLeft,
			Gap:          48,
			PauseOnHover: true,
			FadeOut:      true,
		},
		Server: ServerConfig{Addr: ":4002"},
		Log:    LogConfig{Level: "info"},
		Nav:    DefaultNav(),
		Logos:  DefaultLogos(),
	}
}

// DefaultNav returns the stock navigation cards
func DefaultNav() []domain.NavGroup {
	return []domain.NavGroup{
		{
			Label: "About", BgColor: "#0D0716", TextColor: "#fff",
			Links: []domain.NavLink{
				{Label: "Company", Href: "#", AriaLabel: "About Company"},
				{Label: "Careers", Href: "#", AriaLabel: "About Careers"},
			},
		},
		{
			Label: "Projects", BgColor: "#170D27", TextColor: "#fff",
			Links: []domain.NavLink{
				{Label: "Featured", Href: "#", AriaLabel: "Featured Projects"},
				{Label: "Case Studies", Href: "#", AriaLabel: "Project Case Studies"},
			},
		},
		{
			Label: "Contact", BgColor: "#271E37", TextColor: "#fff",
			Links: []domain.NavLink{
				{Label: "Email", Href: "#", AriaLabel: "Email us"},
				{Label: "Twitter", Href: "#", AriaLabel: "Twitter"},
				{Label: "LinkedIn", Href: "#", AriaLabel: "LinkedIn"},
			},
		},
	}
}

// DefaultLogos returns the stock partner logos
func DefaultLogos() []domain.Logo {
	return []domain.Logo{
		{Title: "React", Href: "https://react.dev"},
		{Title: "Next.js", Href: "https://nextjs.org"},
		{Title: "TypeScript", Href: "https://www.typescriptlang.org"},
		{Title: "Tailwind CSS", Href: "https://tailwindcss.com"},
		{Title: "JavaScript", Href: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"},
		{Title: "Node.js", Href: "https://nodejs.org"},
	}
}

// Load reads the TOML config at path (or the default location), applies
// AMPHI_* environment overrides and validates the result. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// .env is optional, but a broken one is reported
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals data over cfg. Nav and logo lists in the file replace
// the defaults wholesale instead of merging element by element.
func decode(data []byte, cfg *Config) error {
	nav, logos := cfg.Nav, cfg.Logos
	cfg.Nav, cfg.Logos = nil, nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if len(cfg.Nav) == 0 {
		cfg.Nav = nav
	}
	if len(cfg.Logos) == 0 {
		cfg.Logos = logos
	}
	return nil
}

// ApplyEnv overrides config values from AMPHI_* variables. A value that
// does not parse is an error.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("ADDR"); ok {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		cfg.Server.Addr = v
	}
	if v, ok := get("BACKEND"); ok {
		cfg.Search.Backend = strings.ToLower(v)
	}
	if v, ok := get("REMOTE_URL"); ok {
		cfg.Search.RemoteURL = v
	}
	if v, ok := get("LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := get("LATENCY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %sLATENCY: %w", envPrefix, err)
		}
		cfg.Search.Latency = Duration{d}
	}
	if v, ok := get("MOUSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %sMOUSE: %w", envPrefix, err)
		}
		cfg.UI.Mouse = b
	}
	return nil
}

// Validate checks that values are usable
func (c *Config) Validate() error {
	switch c.Search.Backend {
	case BackendStatic:
	case BackendRemote:
		if strings.TrimSpace(c.Search.RemoteURL) == "" {
			return fmt.Errorf("search.remote_url is required for the remote backend")
		}
	default:
		return fmt.Errorf("unknown search backend %q", c.Search.Backend)
	}
	if c.Search.Latency.Duration < 0 {
		return fmt.Errorf("search.latency must not be negative")
	}
	if c.Search.Timeout.Duration <= 0 {
		return fmt.Errorf("search.timeout must be positive")
	}
	if c.UI.Tick.Duration <= 0 {
		return fmt.Errorf("ui.tick must be positive")
	}
	switch c.LogoStrip.Direction {
	case DirectionLeft, DirectionRight:
	default:
		return fmt.Errorf("logo_strip.direction must be %q or %q", DirectionLeft, DirectionRight)
	}
	if c.LogoStrip.Speed < 0 {
		return fmt.Errorf("logo_strip.speed must not be negative")
	}
	if c.LogoStrip.Gap < 0 {
		return fmt.Errorf("logo_strip.gap must not be negative")
	}
	for i, g := range c.Nav {
		if strings.TrimSpace(g.Label) == "" {
			return fmt.Errorf("nav[%d]: label is required", i)
		}
	}
	return nil
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return defaultConfigPath
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
