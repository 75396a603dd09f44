package calcerrors

import (
	"fmt"
)

type ConfigError struct {
	base     int
	min, max int
}

func NewConfigError(base, min, max int) *ConfigError {
	return &ConfigError{base: base, min: min, max: max}
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %v: %d not in [%d, %d]", ErrConfig, ErrBaseOutOfRange, e.base, e.min, e.max)
}

func (e *ConfigError) Base() int {
	return e.base
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfig, ErrBaseOutOfRange}
}

var _ error = (*ConfigError)(nil)
var _ unwrapInterface = (*ConfigError)(nil)
