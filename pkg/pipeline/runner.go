package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/polytile/pkg/cache"
	errs "github.com/matzehuels/polytile/pkg/errors"
	"github.com/matzehuels/polytile/pkg/input"
	"github.com/matzehuels/polytile/pkg/observability"
	"github.com/matzehuels/polytile/pkg/polyomino"
	"github.com/matzehuels/polytile/pkg/tiling"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → place → render pipeline with caching.
//
// If the tiling string is illegal, Execute returns a Result holding the
// partial grid together with the placement error; nothing is rendered.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	f, err := BuildFamily(opts)
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	result.Family = f

	p, err := LoadProblem(opts, f.CellCount())
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Problem = p
	result.ProblemHash = cache.HashProblem(p.Height, p.Width, p.Tag, p.Symbols)
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Debug("loaded problem",
		"problem", p.Name(),
		"shape", f.Name(),
		"orientations", f.Len(),
		"symbols", len(p.Symbols))

	// Stage 2: Place
	placeStart := time.Now()
	g, err := Place(ctx, f, p, opts)
	result.Grid = g
	result.Stats.PlaceTime = time.Since(placeStart)
	if g != nil {
		result.Stats.Tiles = g.Count()
		result.Stats.Ignored = g.Ignored()
		result.Stats.Open = g.Open()
	}
	if err != nil {
		if errs.IsTilingFailure(err) {
			logger.Warn("illegal tiling string",
				"problem", p.Name(),
				"placed", result.Stats.Tiles,
				"err", err)
		}
		return result, fmt.Errorf("place: %w", err)
	}

	logger.Info("placed tiles",
		"problem", p.Name(),
		"tiles", result.Stats.Tiles,
		"open", result.Stats.Open,
		"duration", result.Stats.PlaceTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, info, err := r.RenderWithCacheInfo(ctx, result.ProblemHash, g, f, p, opts)
	if err != nil {
		return result, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", info.Hits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Each format is looked up separately; only the missing ones are rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, problemHash string, g *tiling.Grid, f *polyomino.Family, p *input.Problem, opts Options) (map[string][]byte, CacheInfo, error) {
	var info CacheInfo
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, info, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(problemHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				cacheHooks.OnCacheHit(ctx, format)
				artifacts[format] = data
				info.Hits++
				continue
			}
			cacheHooks.OnCacheMiss(ctx, format)
		}

		data, err := RenderFormat(ctx, g, f, p, format, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, info, err
		}
		artifacts[format] = data
		info.Misses++

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, format, len(data))
		}
	}

	info.RenderHit = info.Misses == 0 && info.Hits > 0
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, info, nil
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
