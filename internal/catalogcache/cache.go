package catalogcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"marquee/internal/catalog"
	"marquee/internal/logging"
	"marquee/internal/pipeline"
	"marquee/internal/source"
)

// ErrNoSource reports a cache constructed without a reader.
var ErrNoSource = errors.New("catalog cache has no source")

// Entry is one built catalog snapshot.
type Entry struct {
	Catalog     *catalog.Catalog
	Fingerprint string
	Generation  string
	Source      string
	BuiltAt     time.Time
	Elapsed     time.Duration
}

// Stats counts cache activity since construction.
type Stats struct {
	Hits   int64
	Builds int64
}

// Cache provides thread-safe access to the current catalog.
type Cache struct {
	reader  source.Reader
	builder *pipeline.Builder
	logger  *slog.Logger

	mu      sync.RWMutex
	current *Entry

	group  singleflight.Group
	hits   atomic.Int64
	builds atomic.Int64
}

// New creates a cache over reader. Nothing is read until the first Get.
func New(reader source.Reader, builder *pipeline.Builder, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = logging.NewNop()
	}
	if builder == nil {
		builder = pipeline.New(pipeline.Options{Logger: logger})
	}
	return &Cache{
		reader:  reader,
		builder: builder,
		logger:  logging.NewComponentLogger(logger, "catalogcache"),
	}
}

// Get returns the catalog for the source's current content, rebuilding when
// the fingerprint changed or no entry is cached.
func (c *Cache) Get(ctx context.Context) (*Entry, error) {
	if c.reader == nil {
		return nil, ErrNoSource
	}
	fingerprint, err := c.reader.Fingerprint(ctx)
	if err != nil {
		return nil, fmt.Errorf("fingerprint source: %w", err)
	}

	c.mu.RLock()
	current := c.current
	c.mu.RUnlock()

	if current != nil && current.Fingerprint == fingerprint {
		c.hits.Add(1)
		c.logger.Debug("catalog cache hit",
			logging.String(logging.FieldFingerprint, fingerprint),
			logging.String(logging.FieldGeneration, current.Generation))
		return current, nil
	}
	return c.build(ctx, "fingerprint changed", fingerprint)
}

// Current returns the cached entry without touching the source.
func (c *Cache) Current() (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.current != nil
}

// Invalidate drops the cached entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	previous := c.current
	c.current = nil
	c.mu.Unlock()

	if previous != nil {
		c.logger.Debug("catalog cache invalidated",
			logging.String(logging.FieldGeneration, previous.Generation))
	}
}

// Rebuild reads the source and replaces the cached entry regardless of its
// fingerprint.
func (c *Cache) Rebuild(ctx context.Context) (*Entry, error) {
	if c.reader == nil {
		return nil, ErrNoSource
	}
	return c.build(ctx, "rebuild requested", "")
}

// Stats reports hit and build counts.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Builds: c.builds.Load()}
}

// build reads and rebuilds the catalog. A non-empty fingerprint skips the
// build when another caller already produced an entry for it.
func (c *Cache) build(ctx context.Context, reason, fingerprint string) (*Entry, error) {
	result, err, shared := c.group.Do("build", func() (any, error) {
		if fingerprint != "" {
			c.mu.RLock()
			current := c.current
			c.mu.RUnlock()
			if current != nil && current.Fingerprint == fingerprint {
				return current, nil
			}
		}

		started := time.Now()
		ds, err := c.reader.Read(ctx)
		if err != nil {
			return nil, err
		}
		cat := c.builder.Build(ds.Rows, c.reader.Path())
		entry := &Entry{
			Catalog:     cat,
			Fingerprint: ds.Fingerprint,
			Generation:  uuid.NewString(),
			Source:      c.reader.Path(),
			BuiltAt:     cat.BuiltAt(),
			Elapsed:     time.Since(started),
		}

		c.mu.Lock()
		c.current = entry
		c.mu.Unlock()
		c.builds.Add(1)

		c.logger.Info("catalog rebuilt",
			logging.String(logging.FieldEventType, "catalog_rebuilt"),
			logging.String("reason", reason),
			logging.String(logging.FieldSource, entry.Source),
			logging.Int("titles", cat.Len()),
			logging.String(logging.FieldFingerprint, entry.Fingerprint),
			logging.String(logging.FieldGeneration, entry.Generation),
			logging.Duration("elapsed", entry.Elapsed))
		return entry, nil
	})
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	if shared {
		c.logger.Debug("catalog build shared with concurrent caller")
	}
	return result.(*Entry), nil
}
