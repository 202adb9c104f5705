package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
)

func TestPhotoFilename(t *testing.T) {
	tests := []struct {
		name string
		link string
		id   int64
		want string
	}{
		{"jpg extension", "https://cdn.example.com/2024/pic.jpg", 5, "photo_5.jpg"},
		{"no extension no trailing dot", "https://cdn.example.com/2024/pic", 5, "photo_5"},
		{"dotted directory does not leak", "https://cdn.example.com/v2.1/raw", 9, "photo_9"},
		{"relative link", "storage/photos/cover.png", 1, "photo_1.png"},
		{"double extension keeps the last", "https://cdn/archive.tar.gz", 2, "photo_2.gz"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, photoFilename(tt.link, tt.id))
		})
	}
}

func TestDocumentFilename(t *testing.T) {
	tests := []struct {
		name string
		link string
		id   int64
		want string
	}{
		{"pdf extension", "https://cdn.example.com/files/syllabus.pdf", 3, "document_3.pdf"},
		{"relative path", "storage/docs/notes.docx", 4, "document_4.docx"},
		{"extension always taken from last dot", "https://cdn/v2.1/raw", 7, "document_7.1/raw"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, documentFilename(tt.link, tt.id))
		})
	}
}

func TestDownloadImage_WritesPayloadAndReturnsFilename(t *testing.T) {
	client := newFakeClient()
	client.files["https://cdn/pic.jpg"] = []byte("jpeg-bytes")

	e, _ := newTestExporter(t, client, ModeMarkdown)
	assetDir := t.TempDir()

	name, err := e.downloadImage(context.Background(), logging.NewText(io.Discard),
		assetDir, "https://cdn/pic.jpg", 5)
	require.NoError(t, err)
	assert.Equal(t, "photo_5.jpg", name)

	data, err := os.ReadFile(filepath.Join(assetDir, "photo_5.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDownloadDocument_OverwritesExistingFile(t *testing.T) {
	client := newFakeClient()
	client.files["docs/a.pdf"] = []byte("new-bytes")

	e, _ := newTestExporter(t, client, ModeMarkdown)
	assetDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetDir, "document_3.pdf"), []byte("old"), 0o644))

	name, err := e.downloadDocument(context.Background(), logging.NewText(io.Discard),
		assetDir, "docs/a.pdf", 3)
	require.NoError(t, err)
	assert.Equal(t, "document_3.pdf", name)

	data, err := os.ReadFile(filepath.Join(assetDir, "document_3.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new-bytes"), data)
}

func TestDownloadImage_FetchFailurePropagates(t *testing.T) {
	client := newFakeClient()

	e, _ := newTestExporter(t, client, ModeMarkdown)

	_, err := e.downloadImage(context.Background(), logging.NewText(io.Discard),
		t.TempDir(), "https://cdn/missing.jpg", 1)
	assert.Error(t, err)
}
