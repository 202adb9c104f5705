package export

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/api"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
)

// Run exports either the single subject given by subjectID or, when
// subjectID is zero, every subject the user is enrolled in. One goroutine
// per subject; all of them run to completion even if siblings fail, and
// the collected per-subject errors come back joined.
func (e *Exporter) Run(ctx context.Context, userID, subjectID int64) error {
	log := e.log.With("run_id", uuid.NewString())

	var ids []int64
	if subjectID != 0 {
		ids = []int64{subjectID}
	} else {
		var err error
		ids, err = e.enrolledSubjects(ctx, log, userID)
		if err != nil {
			return err
		}
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if err := e.exportSubject(ctx, log, id); err != nil {
				log.Error(ctx, "subject export failed", "subject", id, "error", err)
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("subject %d: %w", id, err))
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	snap := e.progress.Snapshot()
	log.Info(ctx, "export finished",
		"subjects", snap.Subjects,
		"steps", snap.Steps,
		"photos", snap.Photos,
		"documents", snap.Documents,
		"bytes", snap.Bytes,
	)
	return errs
}

// enrolledSubjects pages through the subject-list endpoint starting at
// page 1 and accumulates subject ids in page order.
func (e *Exporter) enrolledSubjects(ctx context.Context, log logging.Logger, userID int64) ([]int64, error) {
	var ids []int64
	for page := 1; ; page++ {
		var sp *api.SubjectsPage
		err := e.limiter.Do(ctx, func() error {
			var err error
			sp, err = e.client.SubjectsPage(ctx, userID, page)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("subjects page %d: %w", page, err)
		}

		for _, item := range sp.Items {
			ids = append(ids, item.ID)
		}
		log.Info(ctx, "listing enrolled subjects", "page", page, "total", len(ids))

		if page >= sp.LastPage {
			return ids, nil
		}
	}
}
