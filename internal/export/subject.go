package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/api"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/filex"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
)

// exportSubject walks one subject end-to-end: fetch, intro document,
// chapter directories, then every visible step strictly in order. Any
// failure aborts the whole subject; partially written files stay on disk.
func (e *Exporter) exportSubject(ctx context.Context, log logging.Logger, id int64) error {
	var subj *api.Subject
	err := e.limiter.Do(ctx, func() error {
		var err error
		subj, err = e.client.Subject(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	log = log.With("subject", id)
	log.Info(ctx, "loading subject", "title", subj.Title)

	dirName := filex.SanitizeName(strings.Join(
		[]string{subj.Title, subj.Code, strconv.FormatInt(id, 10)}, " "))
	subjectDir := filepath.Join(e.outDir, dirName)
	assetDir := filepath.Join(subjectDir, "assets")
	if err := filex.EnsureDir(assetDir); err != nil {
		return err
	}

	intro, err := e.renderIntro(subj)
	if err != nil {
		return err
	}
	introPath := filepath.Join(subjectDir, "intro."+string(e.mode))
	if err := os.WriteFile(introPath, intro, 0o644); err != nil {
		return fmt.Errorf("write intro: %w", err)
	}

	order, byChapter := groupSteps(subj.Chapters, subj.Steps)
	for _, ch := range order {
		log.Info(ctx, "loading chapter", "title", ch.Title)
		chapterDir := filepath.Join(subjectDir, filex.SanitizeName(ch.Title))
		if err := filex.EnsureDir(chapterDir); err != nil {
			return err
		}
		for _, stepID := range byChapter[ch.ID] {
			if err := e.exportStep(ctx, log, stepID, chapterDir, assetDir); err != nil {
				return fmt.Errorf("step %d: %w", stepID, err)
			}
		}
	}

	e.progress.SubjectDone()
	return nil
}

// exportStep fetches one lesson, renders it and writes
// "{sanitized title}-{id}.{mode}" into chapterDir.
func (e *Exporter) exportStep(ctx context.Context, log logging.Logger, stepID int64, chapterDir, assetDir string) error {
	var step *api.Step
	err := e.limiter.Do(ctx, func() error {
		var err error
		step, err = e.client.Step(ctx, stepID)
		return err
	})
	if err != nil {
		return err
	}

	log.Info(ctx, "loading step", "title", step.Title)

	data, err := e.renderStep(ctx, log, step, assetDir)
	if err != nil {
		return err
	}

	name := filex.SanitizeName(fmt.Sprintf("%s-%d.%s", step.Title, step.ID, e.mode))
	if err := os.WriteFile(filepath.Join(chapterDir, name), data, 0o644); err != nil {
		return fmt.Errorf("write step: %w", err)
	}

	e.progress.StepDone()
	return nil
}

// groupSteps partitions a subject's flat step list by chapter. The
// returned slice fixes chapter iteration order to the order chapters
// appear in the subject; hidden steps and steps pointing at unknown
// chapters are dropped. Duplicate chapter ids keep their first occurrence.
func groupSteps(chapters []api.Chapter, steps []api.StepRef) ([]api.Chapter, map[int64][]int64) {
	order := make([]api.Chapter, 0, len(chapters))
	byChapter := make(map[int64][]int64, len(chapters))

	for _, ch := range chapters {
		if _, ok := byChapter[ch.ID]; ok {
			continue
		}
		order = append(order, ch)
		byChapter[ch.ID] = []int64{}
	}

	for _, st := range steps {
		if st.Hidden {
			continue
		}
		if _, ok := byChapter[st.ChapterID]; !ok {
			continue
		}
		byChapter[st.ChapterID] = append(byChapter[st.ChapterID], st.ID)
	}

	return order, byChapter
}
