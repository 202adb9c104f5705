package export

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/api"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/logging"
	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/ratelimit"
)

// ---- fake client ----

// fakeClient реализует api.Client для юнит-тестов пайплайна.
type fakeClient struct {
	mu sync.Mutex

	subjects map[int64]*api.Subject
	steps    map[int64]*api.Step
	files    map[string][]byte
	pages    []*api.SubjectsPage

	subjectErr map[int64]error
	stepErr    map[int64]error
	fileErr    map[string]error

	// что реально запрашивалось
	pageCalls    []int
	subjectCalls []int64
	stepCalls    []int64
	fileCalls    []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		subjects:   map[int64]*api.Subject{},
		steps:      map[int64]*api.Step{},
		files:      map[string][]byte{},
		subjectErr: map[int64]error{},
		stepErr:    map[int64]error{},
		fileErr:    map[string]error{},
	}
}

func (f *fakeClient) SignIn(ctx context.Context, login, password string) (*api.Session, error) {
	return &api.Session{Token: "tok", UserID: 42}, nil
}

func (f *fakeClient) SubjectsPage(ctx context.Context, userID int64, page int) (*api.SubjectsPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pageCalls = append(f.pageCalls, page)
	if page < 1 || page > len(f.pages) {
		return nil, fmt.Errorf("no page %d", page)
	}
	return f.pages[page-1], nil
}

func (f *fakeClient) Subject(ctx context.Context, id int64) (*api.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjectCalls = append(f.subjectCalls, id)
	if err := f.subjectErr[id]; err != nil {
		return nil, err
	}
	s, ok := f.subjects[id]
	if !ok {
		return nil, fmt.Errorf("no subject %d", id)
	}
	return s, nil
}

func (f *fakeClient) Step(ctx context.Context, id int64) (*api.Step, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stepCalls = append(f.stepCalls, id)
	if err := f.stepErr[id]; err != nil {
		return nil, err
	}
	s, ok := f.steps[id]
	if !ok {
		return nil, fmt.Errorf("no step %d", id)
	}
	return s, nil
}

func (f *fakeClient) File(ctx context.Context, link string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fileCalls = append(f.fileCalls, link)
	if err := f.fileErr[link]; err != nil {
		return nil, err
	}
	data, ok := f.files[link]
	if !ok {
		return nil, fmt.Errorf("no file %s", link)
	}
	return data, nil
}

// ---- helpers ----

func newTestExporter(t *testing.T, client api.Client, mode Mode) (*Exporter, string) {
	t.Helper()
	out := t.TempDir()
	e := New(client, ratelimit.New(50, time.Millisecond), logging.NewText(io.Discard), out, mode)
	return e, out
}

func strptr(s string) *string { return &s }
