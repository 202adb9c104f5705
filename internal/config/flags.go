package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/common"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/flagx"
)

// knownFlags is everything parseFlags understands; anything else on the
// command line is left for other components. Both dash spellings are
// listed because the FlagSet treats --x and -x the same but FilterArgs
// matches tokens literally.
var knownFlags = []string{
	"-o", "-out", "--out",
	"-c", "-credentials", "--credentials",
	"-m", "-mode", "--mode",
	"-d", "-domain", "--domain",
	"-s", "-subject", "--subject",
	"-r", "-rate", "--rate",
	"-p", "-period", "--period",
}

// osArgs is a test seam.
var osArgs = func() []string { return os.Args[1:] }

// parseEnv overlays Config with BULGAKOV_* environment variables.
func parseEnv(cfg *Config) {
	if v := os.Getenv("BULGAKOV_OUT"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv("BULGAKOV_CREDENTIALS"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("BULGAKOV_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("BULGAKOV_DOMAIN"); v != "" {
		cfg.Domain = v
	}
}

// parseFlags populates Config fields from command-line flags. Every flag
// has a short and a long form; both write to the same field.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(osArgs(), knownFlags)

	fs := flag.NewFlagSet("bulgakov-cache", flag.ContinueOnError)

	fs.StringVar(&cfg.OutDir, "o", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.CredentialsFile, "c", cfg.CredentialsFile, "path to the credentials file (.json or .env)")
	fs.StringVar(&cfg.CredentialsFile, "credentials", cfg.CredentialsFile, "path to the credentials file (.json or .env)")
	fs.StringVar(&cfg.Mode, "m", cfg.Mode, "output format: md or json")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "output format: md or json")
	fs.StringVar(&cfg.Domain, "d", cfg.Domain, "franchise domain of the platform")
	fs.StringVar(&cfg.Domain, "domain", cfg.Domain, "franchise domain of the platform")
	fs.Int64Var(&cfg.SubjectID, "s", cfg.SubjectID, "id of a single subject to export (default: all enrolled)")
	fs.Int64Var(&cfg.SubjectID, "subject", cfg.SubjectID, "id of a single subject to export (default: all enrolled)")

	rate := fs.Int("r", cfg.CallsLimit, "max API calls per period")
	fs.IntVar(rate, "rate", *rate, "max API calls per period")
	period := fs.Int("p", int(cfg.Period.Seconds()), "rate period in seconds")
	fs.IntVar(period, "period", *period, "rate period in seconds")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfig, err)
	}

	cfg.CallsLimit = *rate
	cfg.Period = time.Duration(*period) * time.Second
	return nil
}
