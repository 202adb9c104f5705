// Package export implements the fetch-and-materialize pipeline: it walks
// the subject → chapter → step hierarchy of the learning platform and
// mirrors it into a local directory tree, downloading embedded images and
// documents along the way.
//
// Only the top-level per-subject tasks run concurrently. Inside one
// subject, chapters and steps are rendered strictly sequentially, in the
// order the platform lists them. All network calls from all subjects go
// through one shared rate limiter.
package export

import (
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/api"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/progress"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/ratelimit"
)

// Mode selects the output format for rendered documents.
type Mode string

const (
	ModeMarkdown Mode = "md"
	ModeJSON     Mode = "json"
)

// Exporter mirrors subjects from the platform into OutDir. Construct it
// with New; the zero value is not usable.
type Exporter struct {
	client   api.Client
	limiter  *ratelimit.Limiter
	log      logging.Logger
	progress *progress.Reporter
	outDir   string
	mode     Mode
}

// New wires an exporter. The limiter instance is shared across everything
// the exporter does; callers must not hand the same limiter different
// exporters expecting independent budgets.
func New(client api.Client, limiter *ratelimit.Limiter, log logging.Logger, outDir string, mode Mode) *Exporter {
	return &Exporter{
		client:   client,
		limiter:  limiter,
		log:      log,
		progress: &progress.Reporter{},
		outDir:   outDir,
		mode:     mode,
	}
}
