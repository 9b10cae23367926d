// SPDX-License-Identifier: EPL-2.0

package record

import "errors"

var (
	// ErrInvalidParams wraps every configuration problem found by Params.Validate.
	ErrInvalidParams = errors.New("invalid record parameters")
)
