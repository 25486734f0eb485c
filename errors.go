// Package chanselect reports a small, fixed set of error kinds: there is
// no runtime failure surface beyond misconfiguration, a non-blocking
// select finding nothing ready, and an interrupted sync wait.
package chanselect

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReadyOp is returned by [SelectReady] when none of the given
	// operations could complete without parking and no [Nothing] op
	// was present to make that outcome valid.
	ErrNoReadyOp = errors.New("chanselect: no op was ready")

	// ErrInterrupted is returned by [SelectSync] when its [Interrupter]
	// fired before any operation completed.
	ErrInterrupted = errors.New("chanselect: sync wait interrupted")
)

// ConfigError reports a misconfiguration detected at construction time:
// an invalid combination of [Option] values passed to [New]. Handle
// conversions do not produce one; [Channel.AsWriter] and
// [Channel.AsUnconditionalWriter] report a refused conversion through
// their ok result.
type ConfigError struct {
	// Reason is a short, human-readable description of what was wrong.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("chanselect: invalid configuration: %s", e.Reason)
}

// Is reports whether target is also a [*ConfigError], regardless of
// its Reason, so callers can write errors.Is(err, new(ConfigError))
// without matching exact text.
func (e *ConfigError) Is(target error) bool {
	var t *ConfigError
	return errors.As(target, &t)
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
