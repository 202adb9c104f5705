package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/api"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
)

// assetRelDir is where a rendered document finds its materialized assets,
// relative to the chapter directory the document lives in.
const assetRelDir = "../assets"

// renderIntro produces the subject's intro document: description,
// teachers and groups in markdown mode, the raw record in json mode.
func (e *Exporter) renderIntro(subj *api.Subject) ([]byte, error) {
	if e.mode == ModeJSON {
		return renderJSON(subj.Raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", subj.Title)
	fmt.Fprintf(&b, "## %s\n", subj.Code)
	b.WriteString("### О чём эта дисциплина?\n")
	fmt.Fprintf(&b, "> %s\n", subj.Description)
	b.WriteString("\n")
	b.WriteString("### Преподаватели:\n")
	for _, tch := range subj.Teachers {
		fmt.Fprintf(&b, "%s %s %s\n", tch.FirstName, tch.LastName, tch.MiddleName)
	}
	b.WriteString("\n")
	b.WriteString("### Группы:\n")
	for _, g := range subj.Groups {
		fmt.Fprintf(&b, " - %s\n", g.Name)
	}
	return []byte(b.String()), nil
}

// renderStep produces one step document, materializing every embedded
// asset on the way. The block order is a contract of the output format,
// not an implementation detail; see the per-block comments.
func (e *Exporter) renderStep(ctx context.Context, log logging.Logger, step *api.Step, assetDir string) ([]byte, error) {
	if e.mode == ModeJSON {
		return renderJSON(step.Raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", step.Title)
	b.WriteString("\n")

	b.WriteString("### Зачем это учить??\n")
	fmt.Fprintf(&b, "%s\n", step.PublicText)
	b.WriteString("\n")
	for _, photo := range step.PublicPhotos {
		if err := e.writeImageLine(ctx, log, &b, assetDir, photo.Normal, photo.ID); err != nil {
			return nil, err
		}
	}

	b.WriteString("### Как это учить???\n")
	fmt.Fprintf(&b, "%s\n", step.PrivateText)
	b.WriteString("\n")
	// Video thumbnails come first as inline images, then the same list
	// again as links to the actual recordings. Both renditions are part
	// of the established output format.
	for _, video := range step.PrivateVideos {
		if err := e.writeImageLine(ctx, log, &b, assetDir, video.Normal, video.ID); err != nil {
			return nil, err
		}
	}
	for _, link := range step.PrivateLinks {
		fmt.Fprintf(&b, "[Ссылка: %s](%s)\n", link.Title, link.URL)
	}
	for _, video := range step.PrivateVideos {
		fmt.Fprintf(&b, "[Видео: %s](%s)\n", video.Description, video.Path)
	}
	for _, doc := range step.PrivateDocuments {
		if err := e.writeDocumentLine(ctx, log, &b, assetDir, doc); err != nil {
			return nil, err
		}
	}

	// Sections repeat the media sub-order of the step body, except their
	// videos render only as links, without the thumbnail pass.
	for _, sec := range step.Sections {
		fmt.Fprintf(&b, "### %s\n", sec.Title)
		if sec.Content != nil {
			fmt.Fprintf(&b, "%s\n", *sec.Content)
		}
		for _, photo := range sec.Photos {
			if err := e.writeImageLine(ctx, log, &b, assetDir, photo.Normal, photo.ID); err != nil {
				return nil, err
			}
		}
		for _, link := range sec.Links {
			fmt.Fprintf(&b, "[Ссылка: %s](%s)\n", link.Title, link.URL)
		}
		for _, video := range sec.Videos {
			fmt.Fprintf(&b, "[Видео: %s](%s)\n", video.Description, video.Path)
		}
		for _, doc := range sec.Documents {
			if err := e.writeDocumentLine(ctx, log, &b, assetDir, doc); err != nil {
				return nil, err
			}
		}
	}

	return []byte(b.String()), nil
}

func (e *Exporter) writeImageLine(ctx context.Context, log logging.Logger, b *strings.Builder, assetDir, link string, id int64) error {
	filename, err := e.downloadImage(ctx, log, assetDir, link, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(b, "![%d](%s)\n", id, path.Join(assetRelDir, filename))
	return nil
}

func (e *Exporter) writeDocumentLine(ctx context.Context, log logging.Logger, b *strings.Builder, assetDir string, doc api.Document) error {
	filename, err := e.downloadDocument(ctx, log, assetDir, doc.Path, doc.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(b, "[Документ %s](%s)\n", doc.Description, path.Join(assetRelDir, filename))
	return nil
}

// renderJSON re-serializes the raw platform payload with sorted keys,
// 4-space indentation and unescaped non-ASCII. Parsing the result yields
// the original record, modulo key order. Numbers are decoded as
// json.Number so ids wider than 53 bits survive the round trip unchanged.
func renderJSON(raw json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
