// Package logger is the process-wide structured logger. Every helper takes the
// request context first so trace and span ids land on the record.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"trade-search/internal/trace"
)

// Callers sit this many frames above emit.
const callerDepth = 2

var (
	base     = slog.New(slog.NewTextHandler(io.Discard, nil))
	detailed bool
	out      *os.File
)

// LogConfig selects level, encoding and destination.
type LogConfig struct {
	Level           string // DEBUG, INFO, WARN or ERROR
	Format          string // json or text
	DetailedLogging bool   // debug records and caller source
	File            string // empty means stderr
}

func Init() error {
	return InitWithConfig(LoadConfigFromEnv())
}

// LoadConfigFromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_DETAILED and LOG_FILE.
func LoadConfigFromEnv() LogConfig {
	cfg := LogConfig{
		Level:           os.Getenv("LOG_LEVEL"),
		Format:          os.Getenv("LOG_FORMAT"),
		DetailedLogging: os.Getenv("LOG_DETAILED") == "true",
		File:            os.Getenv("LOG_FILE"),
	}
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	return cfg
}

// InitWithConfig opens config.File for appending, or uses stderr. Stdout is
// left to the terminal UI.
func InitWithConfig(config LogConfig) error {
	if config.File == "" {
		InitWithWriter(config, os.Stderr)
		return nil
	}
	f, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	_ = Shutdown()
	out = f
	InitWithWriter(config, f)
	return nil
}

// InitWithWriter replaces the global logger with one writing to w.
func InitWithWriter(config LogConfig, w io.Writer) {
	detailed = config.DetailedLogging
	opts := &slog.HandlerOptions{Level: parseLogLevel(config.Level)}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if config.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	base = slog.New(h)
	slog.SetDefault(base)
}

// Shutdown closes the log file opened by InitWithConfig, if any.
func Shutdown() error {
	if out == nil {
		return nil
	}
	err := out.Close()
	out = nil
	return err
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// emit writes one record. depth is the number of frames between emit and the
// code that should appear as the source.
func emit(ctx context.Context, level slog.Level, depth int, msg string, args ...any) {
	if traceID, spanID, ok := trace.GetTraceFields(ctx); ok {
		args = append([]any{"trace_id", traceID, "span_id", spanID}, args...)
	}
	if detailed {
		if pc, file, line, ok := runtime.Caller(depth); ok {
			name := ""
			if fn := runtime.FuncForPC(pc); fn != nil {
				name = fn.Name()
			}
			args = append(args, slog.Group("source",
				slog.String("function", name),
				slog.String("file", file),
				slog.Int("line", line),
			))
		}
	}
	base.Log(ctx, level, msg, args...)
}

// Debug is dropped unless detailed logging is on.
func Debug(ctx context.Context, msg string, args ...any) {
	if detailed {
		emit(ctx, slog.LevelDebug, callerDepth, msg, args...)
	}
}

func Info(ctx context.Context, msg string, args ...any) {
	emit(ctx, slog.LevelInfo, callerDepth, msg, args...)
}

// InfoSkip attributes the record skip frames further up; decorators use it.
func InfoSkip(ctx context.Context, skip int, msg string, args ...any) {
	emit(ctx, slog.LevelInfo, callerDepth+skip, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	emit(ctx, slog.LevelWarn, callerDepth, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	emit(ctx, slog.LevelError, callerDepth, msg, args...)
}

// ErrorWithErr logs err and marks the active span as failed.
func ErrorWithErr(ctx context.Context, msg string, err error, args ...any) {
	failSpan(ctx, err)
	emit(ctx, slog.LevelError, callerDepth, msg, append([]any{"error", err}, args...)...)
}

// ErrorWithErrSkip is ErrorWithErr for decorators, see InfoSkip.
func ErrorWithErrSkip(ctx context.Context, skip int, msg string, err error, args ...any) {
	failSpan(ctx, err)
	emit(ctx, slog.LevelError, callerDepth+skip, msg, append([]any{"error", err}, args...)...)
}

func failSpan(ctx context.Context, err error) {
	span := oteltrace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// OperationTimer measures one operation under its own span.
type OperationTimer struct {
	ctx    context.Context
	span   oteltrace.Span
	name   string
	start  time.Time
	fields []any
}

func StartOperation(ctx context.Context, operation string, fields ...any) *OperationTimer {
	ctx, span := trace.StartSpan(ctx, operation)
	span.SetAttributes(attributes(fields)...)
	Debug(ctx, "Operation started", append([]any{"operation", operation}, fields...)...)
	return &OperationTimer{ctx: ctx, span: span, name: operation, start: time.Now(), fields: fields}
}

// End closes the span and logs the duration at debug level.
func (ot *OperationTimer) End(additionalFields ...any) {
	ms := ot.finish(additionalFields)
	ot.span.SetStatus(codes.Ok, "completed")
	ot.span.End()
	Debug(ot.ctx, "Operation completed", ot.record(ms, additionalFields)...)
}

// EndWithError closes the span as failed and logs at error level.
func (ot *OperationTimer) EndWithError(err error, additionalFields ...any) {
	ms := ot.finish(additionalFields)
	ot.span.RecordError(err)
	ot.span.SetStatus(codes.Error, err.Error())
	ot.span.End()
	Error(ot.ctx, "Operation failed", append(ot.record(ms, additionalFields), "error", err)...)
}

func (ot *OperationTimer) GetContext() context.Context {
	return ot.ctx
}

func (ot *OperationTimer) finish(extra []any) int64 {
	ms := time.Since(ot.start).Milliseconds()
	ot.span.SetAttributes(attribute.Int64("duration_ms", ms))
	ot.span.SetAttributes(attributes(extra)...)
	return ms
}

func (ot *OperationTimer) record(ms int64, extra []any) []any {
	rec := make([]any, 0, len(ot.fields)+len(extra)+4)
	rec = append(rec, "operation", ot.name)
	rec = append(rec, ot.fields...)
	rec = append(rec, "duration_ms", ms)
	return append(rec, extra...)
}

// attributes converts key/value pairs to span attributes, skipping types
// OpenTelemetry has no attribute for.
func attributes(fields []any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		k, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case string:
			attrs = append(attrs, attribute.String(k, v))
		case int:
			attrs = append(attrs, attribute.Int(k, v))
		case int64:
			attrs = append(attrs, attribute.Int64(k, v))
		case float64:
			attrs = append(attrs, attribute.Float64(k, v))
		case bool:
			attrs = append(attrs, attribute.Bool(k, v))
		}
	}
	return attrs
}

// Search records a submitted search. It is logged at info level whatever the
// detail setting.
func Search(ctx context.Context, requestID, tab, query string, fields ...any) {
	oteltrace.SpanFromContext(ctx).AddEvent("search_submitted", oteltrace.WithAttributes(
		attribute.String("request_id", requestID),
		attribute.String("tab", tab),
		attribute.String("query", query),
	))
	args := append([]any{"type", "SEARCH", "request_id", requestID, "tab", tab, "query", query}, fields...)
	emit(ctx, slog.LevelInfo, callerDepth, "Search submitted", args...)
}

// GridEvent records a user intent applied to a grid. Grids change on every
// keystroke, so these need detailed logging.
func GridEvent(ctx context.Context, grid, action string, fields ...any) {
	if !detailed {
		return
	}
	oteltrace.SpanFromContext(ctx).AddEvent("grid_event", oteltrace.WithAttributes(
		attribute.String("grid", grid),
		attribute.String("action", action),
	))
	args := append([]any{"type", "GRID", "grid", grid, "action", action}, fields...)
	emit(ctx, slog.LevelDebug, callerDepth, "Grid updated", args...)
}
