package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polytile/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 files (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnPlaceStart(_ context.Context, shape string, height, width, symbols int) {
	h.logger.Debug("placing", "shape", shape, "board", boardSize(height, width), "symbols", symbols)
}

func (h logHooks) OnPlaceComplete(_ context.Context, shape string, tiles int, dur time.Duration, err error) {
	if err != nil {
		h.logger.Debug("placement stopped", "shape", shape, "tiles", tiles, "err", err)
		return
	}
	h.logger.Debug("placement done", "shape", shape, "tiles", tiles, "duration", dur)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("rendering", "formats", strings.Join(formats, ","))
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, dur time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", strings.Join(formats, ","), "err", err)
		return
	}
	h.logger.Debug("render done", "formats", strings.Join(formats, ","), "duration", dur)
}

func (h logHooks) OnCacheHit(_ context.Context, key string)  { h.logger.Debug("cache hit", "artifact", key) }
func (h logHooks) OnCacheMiss(_ context.Context, key string) { h.logger.Debug("cache miss", "artifact", key) }

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "artifact", key, "bytes", size)
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
)
