package stream

import (
	"context"
	"runtime"
)

// OptionKey is the context key type for stream options.
type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

// MaxLimitOption is an upper bound. Zero or less means unset.
type MaxLimitOption struct {
	Value int
}

// WorkerOptions sets how many worker lines a stage started with a
// non-positive count runs.
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// ProcessOptions controls what happens to values still queued when the
// context is done. With ProcessRemaining every one of them is emitted as a
// Left, so each input still yields exactly one output.
type ProcessOptions struct {
	ProcessRemaining bool
}

// WithProcessOptions returns a context telling every stage whether to emit a
// Left for each value left over after cancellation (the default) or drop it.
func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

// WithWorkerOptions returns a context whose stages run maxWorkers lines
// unless a stage is given an explicit count.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount reads the worker count from ctx, falling back to
// defaultMaxWorkers when unset or not positive.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

// lines resolves the worker count for a stage: an explicit positive value
// wins, then the context option, then GOMAXPROCS.
func lines(ctx context.Context, requested int) int {
	if requested > 0 {
		return requested
	}
	return GetWorkerMaxCount(ctx, runtime.GOMAXPROCS(0))
}
