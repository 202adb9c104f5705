// Package config assembles runtime settings for the exporter from
// defaults, BULGAKOV_* environment variables and command-line flags, in
// that order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/common"
)

// Domains lists the known franchise tenants of the platform. The chosen
// domain selects the API origin https://{domain}.bulgakov.app.
var Domains = []string{"ithub", "vvsu", "rostov", "ekat", "caspian"}

// Modes lists the supported output formats.
var Modes = []string{"md", "json"}

// Config holds runtime settings for one export run.
//
// SubjectID of 0 means "everything the student is enrolled in".
type Config struct {
	OutDir          string
	CredentialsFile string
	Mode            string
	Domain          string
	SubjectID       int64
	CallsLimit      int
	Period          time.Duration
}

// LoadDefaults populates c with the defaults of the CLI surface.
func (c *Config) LoadDefaults() {
	c.OutDir = "./out"
	c.Mode = "md"
	c.Domain = "ithub"
	c.CallsLimit = 5
	c.Period = time.Second
}

// BaseURL returns the API origin for the configured domain.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("https://%s.bulgakov.app", c.Domain)
}

// Validate checks the assembled configuration before any network call.
func (c *Config) Validate() error {
	if c.CredentialsFile == "" {
		return fmt.Errorf("%w: credentials file path is required (-c)", common.ErrConfig)
	}
	if !contains(Modes, c.Mode) {
		return fmt.Errorf("%w: unknown mode %q, want one of %v", common.ErrConfig, c.Mode, Modes)
	}
	if !contains(Domains, c.Domain) {
		return fmt.Errorf("%w: unknown domain %q, want one of %v", common.ErrConfig, c.Domain, Domains)
	}
	if c.SubjectID < 0 {
		return fmt.Errorf("%w: subject id must be positive", common.ErrConfig)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
