package metrics

import "time"

// EngineMetrics provides observability for command execution.
//
// This interface is optional - if not provided to the command engine, a no-op
// implementation is used with zero overhead.
//
// Example usage:
//
//	// With metrics enabled
//	metrics := prometheus.NewEngineMetrics()
//	eng, err := engine.New(cfg, metrics)
//
//	// Without metrics (no-op)
//	eng, err := engine.New(cfg, nil)
type EngineMetrics interface {
	// RecordCommand records an executed command with its outcome.
	//
	// Parameters:
	//   - command: Lowercase command name (e.g., "md", "deltree"), or
	//     "invalid" when the line could not be parsed
	//   - duration: Time taken to execute the command
	//   - err: Error if the command failed, nil if successful
	RecordCommand(command string, duration time.Duration, err error)

	// SetItemCount updates the number of live items in the tree.
	SetItemCount(count int)

	// RecordLines records the number of command lines processed by a batch.
	RecordLines(count int)
}

// noopEngineMetrics is a no-op implementation of EngineMetrics.
type noopEngineMetrics struct{}

// NewNoopEngineMetrics returns an EngineMetrics that discards everything.
func NewNoopEngineMetrics() EngineMetrics {
	return noopEngineMetrics{}
}

func (noopEngineMetrics) RecordCommand(command string, duration time.Duration, err error) {}
func (noopEngineMetrics) SetItemCount(count int)                                          {}
func (noopEngineMetrics) RecordLines(count int)                                           {}
