package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	"github.com/matzehuels/mekko/pkg/cache"
	"github.com/matzehuels/mekko/pkg/dataset"
	errs "github.com/matzehuels/mekko/pkg/errors"
	"github.com/matzehuels/mekko/pkg/httputil"
	"github.com/matzehuels/mekko/pkg/mekko"
	"github.com/matzehuels/mekko/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL applies to every entry written; 0 never expires.
	TTL time.Duration
	// HTTP downloads http(s) inputs.
	HTTP *httputil.Client
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger falls back to log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger, HTTP: httputil.NewClient()}
}

// Key types reported to cache hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// layoutEntry is the cached output of the layout stage.
type layoutEntry struct {
	Table   mekko.Table  `json:"table"`
	Layout  mekko.Layout `json:"layout"`
	Records int          `json:"records"`
}

// Execute runs the complete load → layout → render pipeline. A load
// failure is terminal: nothing is rendered.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	hooks := observability.Pipeline()

	result := &Result{}

	// Stage 1: Load
	hooks.OnLoadStart(ctx, opts.Input)
	loadStart := time.Now()
	data, err := r.readInput(ctx, opts.Input)
	result.Stats.LoadTime = time.Since(loadStart)
	hooks.OnLoadComplete(ctx, opts.Input, len(data), result.Stats.LoadTime, err)
	if err != nil {
		logger.Error("load failed", "input", opts.Input, "err", err)
		return nil, err
	}
	result.DataHash = cache.Hash(data)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	hooks.OnLayoutStart(ctx, opts.Config.Outer, opts.Config.Inner)
	layoutStart := time.Now()
	entry, hit, err := r.layout(ctx, data, result.DataHash, opts)
	hooks.OnLayoutComplete(ctx, entry.Records, len(entry.Layout.Rects), time.Since(layoutStart), err)
	if err != nil {
		logger.Error("layout failed", "input", opts.Input, "err", err)
		return nil, err
	}
	result.Table = entry.Table
	result.Layout = entry.Layout
	result.CacheInfo.LayoutHit = hit
	result.Stats.Records = entry.Records
	result.Stats.Dropped = entry.Table.Dropped
	result.Stats.Columns = len(entry.Layout.Columns)
	result.Stats.Rects = len(entry.Layout.Rects)
	result.Stats.LayoutTime = time.Since(layoutStart)

	logger.Info("computed layout",
		"records", entry.Records,
		"dropped", entry.Table.Dropped,
		"columns", len(entry.Layout.Columns),
		"rects", len(entry.Layout.Rects),
		"cached", hit,
		"duration", result.Stats.LayoutTime)
	if entry.Layout.Empty() {
		logger.Warn("no records to chart", "outer", opts.Config.Outer, "inner", opts.Config.Inner)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, hit, err := r.render(ctx, entry.Layout, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Table loads the input and aggregates it without laying it out or
// touching the cache.
func (r *Runner) Table(ctx context.Context, opts Options) (mekko.Table, int, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return mekko.Table{}, 0, err
	}
	records, err := r.loadRecords(ctx, opts)
	if err != nil {
		return mekko.Table{}, 0, err
	}
	if err := ctx.Err(); err != nil {
		return mekko.Table{}, 0, err
	}
	return mekko.Aggregate(records, opts.Config.AggregateOptions()), len(records), nil
}

func (r *Runner) layout(ctx context.Context, data []byte, dataHash string, opts Options) (layoutEntry, bool, error) {
	key := r.Keyer.LayoutKey(dataHash, opts.LayoutKeyOpts())

	cacheHooks := observability.Cache()

	if !opts.Refresh {
		if raw, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var entry layoutEntry
			if err := json.Unmarshal(raw, &entry); err == nil {
				cacheHooks.OnCacheHit(ctx, keyTypeLayout)
				return entry, true, nil
			}
		} else if err != nil {
			opts.Logger.Debug("cache read failed", "key", key, "err", err)
		}
	}
	cacheHooks.OnCacheMiss(ctx, keyTypeLayout)

	cfg := opts.Config
	records, err := dataset.Read(inputName(opts.Input), bytes.NewReader(data), dataset.Options{Required: cfg.Fields()})
	if err != nil {
		return layoutEntry{}, false, err
	}
	opts.Logger.Debug("loaded records", "input", opts.Input, "records", len(records))

	table := mekko.Aggregate(records, cfg.AggregateOptions())
	entry := layoutEntry{
		Table:   table,
		Layout:  mekko.Build(table, cfg.PlotWidth(), cfg.PlotHeight(), cfg.LayoutOptions()...),
		Records: len(records),
	}

	if raw, err := json.Marshal(entry); err == nil {
		if err := r.Cache.Set(ctx, key, raw, r.TTL); err != nil {
			opts.Logger.Debug("cache write failed", "key", key, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, keyTypeLayout, len(raw))
		}
	}
	return entry, false, nil
}

func (r *Runner) render(ctx context.Context, l mekko.Layout, opts Options) (map[string][]byte, bool, error) {
	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			cacheHooks.OnCacheHit(ctx, keyTypeArtifact)
			return artifacts, true, nil
		}
	}
	cacheHooks.OnCacheMiss(ctx, keyTypeArtifact)

	rendered, err := Render(ctx, l, opts.Config, opts.Formats)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// loadRecords decodes the input without keeping its raw bytes. Local
// files are streamed from disk.
func (r *Runner) loadRecords(ctx context.Context, opts Options) ([]mekko.Record, error) {
	dopts := dataset.Options{Required: opts.Config.Fields()}
	if !httputil.IsURL(opts.Input) {
		return dataset.Load(opts.Input, dopts)
	}
	data, err := r.readInput(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	return dataset.Read(inputName(opts.Input), bytes.NewReader(data), dopts)
}

// readInput returns the raw dataset bytes from a local path or an http(s)
// URL.
func (r *Runner) readInput(ctx context.Context, path string) ([]byte, error) {
	if httputil.IsURL(path) {
		client := r.HTTP
		if client == nil {
			client = httputil.NewClient()
		}
		return client.Fetch(ctx, path)
	}
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read %s", path)
}

// inputName is the name whose extension selects the decoder. URLs use
// their path so query strings do not hide the extension.
func inputName(path string) string {
	if httputil.IsURL(path) {
		if u, err := url.Parse(path); err == nil {
			return u.Path
		}
	}
	return path
}
