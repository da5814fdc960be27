// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a Config field outside its documented domain.
var ErrInvalidConfig = errors.New("bench: invalid config")

// configErrorf names the offending field and wraps ErrInvalidConfig.
func configErrorf(field string, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidConfig)
}
