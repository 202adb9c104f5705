// Command bulgakov-cache downloads the subjects, chapters and lesson
// steps a student has access to on an LXP IThub franchise and mirrors
// them into a local directory tree as markdown or json, together with
// the embedded images and documents.
package main

import (
	"context"
	"log"
	"os"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/api"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/config"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/credentials"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/export"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/ratelimit"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewText(os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Error(context.Background(), "export failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx := context.Background()

	creds, err := credentials.Load(cfg.CredentialsFile)
	if err != nil {
		return err
	}

	client := api.NewHTTPClient(cfg.BaseURL())
	session, err := client.SignIn(ctx, creds.Login, creds.Password)
	if err != nil {
		return err
	}
	logger.Info(ctx, "signed in", "user_id", session.UserID, "domain", cfg.Domain)

	limiter := ratelimit.New(cfg.CallsLimit, cfg.Period)
	exporter := export.New(client, limiter, logger, cfg.OutDir, export.Mode(cfg.Mode))
	return exporter.Run(ctx, session.UserID, cfg.SubjectID)
}
