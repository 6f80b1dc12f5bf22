package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kiralago/storefront/internal/test"
)

type mediaFacadeStub struct {
	names []string
	err   error
}

func (s *mediaFacadeStub) ReferencedPictures(ctx context.Context) ([]string, error) {
	return s.names, s.err
}

func newJanitor(facade MediaFacade, files *test.FileStoreStub) *MediaJanitor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMediaJanitor(facade, files, time.Minute, logger)
}

func TestSweepRemovesOrphans(t *testing.T) {
	files := test.NewFileStoreStub()
	old := time.Now().Add(-time.Hour)
	files.Files["user_1_1.png"] = []byte("kept")
	files.Mods["user_1_1.png"] = old
	files.Files["user_2_1.png"] = []byte("orphan")
	files.Mods["user_2_1.png"] = old

	janitor := newJanitor(&mediaFacadeStub{names: []string{"user_1_1.png"}}, files)
	janitor.Sweep(context.Background())

	if _, ok := files.Files["user_1_1.png"]; !ok {
		t.Fatalf("referenced file must survive")
	}
	if _, ok := files.Files["user_2_1.png"]; ok {
		t.Fatalf("orphan must be removed")
	}
}

func TestSweepSkipsFreshFiles(t *testing.T) {
	files := test.NewFileStoreStub()
	files.Files["user_3_1.png"] = []byte("in flight")
	files.Mods["user_3_1.png"] = time.Now()

	janitor := newJanitor(&mediaFacadeStub{}, files)
	janitor.Sweep(context.Background())

	if _, ok := files.Files["user_3_1.png"]; !ok {
		t.Fatalf("fresh file must survive a sweep")
	}
}

func TestSweepReferenceLookupFailure(t *testing.T) {
	files := test.NewFileStoreStub()
	files.Files["user_4_1.png"] = []byte("keep on error")
	files.Mods["user_4_1.png"] = time.Now().Add(-time.Hour)

	janitor := newJanitor(&mediaFacadeStub{err: errors.New("db down")}, files)
	janitor.Sweep(context.Background())

	if _, ok := files.Files["user_4_1.png"]; !ok {
		t.Fatalf("nothing may be deleted when references cannot be read")
	}
}

func TestJanitorStartStop(t *testing.T) {
	files := test.NewFileStoreStub()
	janitor := newJanitor(&mediaFacadeStub{}, files)

	janitor.Start(context.Background())
	janitor.Stop()
	// Stop is safe to call twice
	janitor.Stop()
}
