// SPDX-License-Identifier: MIT

package multiply

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned for a Strategy value or name outside the
// supported family.
var ErrUnknownStrategy = errors.New("multiply: unknown strategy")

// multiplyErrorf wraps err with the strategy tag ("parallel: matrix: ...").
// Operand errors keep their matrix sentinels reachable via errors.Is.
func multiplyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
