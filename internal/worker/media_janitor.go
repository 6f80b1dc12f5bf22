package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kiralago/storefront/internal/media"
)

// MediaFacade exposes the subset of application functionality required by the janitor.
type MediaFacade interface {
	ReferencedPictures(ctx context.Context) ([]string, error)
}

// MediaJanitor periodically deletes stored pictures no user references
// anymore. Such orphans appear when an upload replaces a picture but the
// old file delete failed, or when a row update never committed.
type MediaJanitor struct {
	facade   MediaFacade
	files    media.FileStore
	interval time.Duration
	// minAge protects files from an upload still in flight: the file is
	// written before the row commits, so very fresh files are skipped.
	minAge time.Duration
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
	now    func() time.Time
}

// NewMediaJanitor constructs the janitor.
func NewMediaJanitor(facade MediaFacade, files media.FileStore, interval time.Duration, logger *slog.Logger) *MediaJanitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &MediaJanitor{
		facade:   facade,
		files:    files,
		interval: interval,
		minAge:   interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start launches the background sweep loop.
func (j *MediaJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.loop(runCtx)
}

// Stop waits for the sweep loop to finish.
func (j *MediaJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *MediaJanitor) loop(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep removes every stored file that is old enough and not referenced by
// any user row.
func (j *MediaJanitor) Sweep(ctx context.Context) {
	entries, err := j.files.List(ctx)
	if err != nil {
		j.logger.Error("media sweep list failed", slog.String("error", err.Error()))
		return
	}
	if len(entries) == 0 {
		return
	}

	names, err := j.facade.ReferencedPictures(ctx)
	if err != nil {
		j.logger.Error("media sweep reference lookup failed", slog.String("error", err.Error()))
		return
	}
	referenced := make(map[string]bool, len(names))
	for _, name := range names {
		referenced[name] = true
	}

	cutoff := j.now().Add(-j.minAge)
	removed := 0
	for _, entry := range entries {
		if referenced[entry.Name] || entry.ModTime.After(cutoff) {
			continue
		}
		existed, err := j.files.Delete(ctx, entry.Name)
		if err != nil {
			j.logger.Warn("media sweep delete failed",
				slog.String("file", entry.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		if existed {
			removed++
		}
	}
	if removed > 0 {
		j.logger.Info("media sweep removed orphans", slog.Int("count", removed))
	}
}
