package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
)

// downloadImage materializes one image into assetDir and returns the
// bare filename for the caller to reference.
func (e *Exporter) downloadImage(ctx context.Context, log logging.Logger, assetDir, link string, id int64) (string, error) {
	log.Info(ctx, "loading image", "url", link)

	data, err := e.fetchFile(ctx, link)
	if err != nil {
		return "", err
	}

	filename := photoFilename(link, id)
	if err := os.WriteFile(filepath.Join(assetDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	e.progress.PhotoDone(int64(len(data)))
	return filename, nil
}

// downloadDocument materializes one document into assetDir and returns
// the bare filename.
func (e *Exporter) downloadDocument(ctx context.Context, log logging.Logger, assetDir, link string, id int64) (string, error) {
	log.Info(ctx, "loading document", "url", link)

	data, err := e.fetchFile(ctx, link)
	if err != nil {
		return "", err
	}

	filename := documentFilename(link, id)
	if err := os.WriteFile(filepath.Join(assetDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	e.progress.DocumentDone(int64(len(data)))
	return filename, nil
}

// fetchFile pulls one binary through the shared limiter.
func (e *Exporter) fetchFile(ctx context.Context, link string) ([]byte, error) {
	var data []byte
	err := e.limiter.Do(ctx, func() error {
		var err error
		data, err = e.client.File(ctx, link)
		return err
	})
	return data, err
}

// photoFilename is "photo_{id}" plus the extension of the link's last
// path segment, when it has one; a segment without a dot gets no suffix
// at all.
func photoFilename(link string, id int64) string {
	last := link
	if i := strings.LastIndex(last, "/"); i >= 0 {
		last = last[i+1:]
	}

	name := fmt.Sprintf("photo_%d", id)
	if i := strings.LastIndex(last, "."); i >= 0 {
		name += "." + last[i+1:]
	}
	return name
}

// documentFilename is "document_{id}.{ext}" where ext is everything after
// the last dot of the whole link. Known limitation: a link without a dot
// anywhere yields the entire link as the suffix; the platform always
// serves documents with an extension, so this stays unhandled.
func documentFilename(link string, id int64) string {
	ext := link
	if i := strings.LastIndex(link, "."); i >= 0 {
		ext = link[i+1:]
	}
	return fmt.Sprintf("document_%d.%s", id, ext)
}
