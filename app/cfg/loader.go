package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Pipeline configuration
	SourcesFile     string `long:"sources-file" env:"SOURCES_FILE" default:"" description:"YAML file with category feed URL lists (built-in defaults when unset)"`
	MaxItemsPerFeed int    `long:"max-items-per-feed" env:"MAX_ITEMS_PER_FEED" default:"10" description:"Maximum items taken from a single feed document"`
	DefaultLimit    int    `long:"default-limit" env:"DEFAULT_LIMIT" default:"20" description:"Default item limit for feed requests"`
	FetchTimeout    int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Per-source fetch timeout in seconds"`
	SessionTTL      int    `long:"session-ttl" env:"SESSION_TTL" default:"30" description:"Idle feed session lifetime in minutes"`
	Warmup          bool   `long:"warmup" env:"WARMUP" description:"Prefetch the default feed mix on startup"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"SportScroll/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:            raw.Port,
		SourcesFile:     raw.SourcesFile,
		MaxItemsPerFeed: raw.MaxItemsPerFeed,
		DefaultLimit:    raw.DefaultLimit,
		FetchTimeout:    raw.FetchTimeout,
		SessionTTL:      raw.SessionTTL,
		Warmup:          raw.Warmup,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
