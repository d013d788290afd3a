package sampler

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

// ErrPassInProgress is yielded by a pass that starts while another pass over
// the same BatchSampler has not finished.
var ErrPassInProgress = errors.New("sampler: another pass is in progress")

// ConfigurationError reports an invalid or contradictory option.
// It is only ever returned by constructors, never during iteration.
type ConfigurationError struct {
	Option string // Offending option, e.g. "batch_size".
	Reason string
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(option, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Option: option, Reason: fmt.Sprintf(format, args...)}
}
