// SPDX-License-Identifier: EPL-2.0

package host

import "errors"

var (
	ErrInitFailed    = errors.New("circuit init failed")
	ErrBadAssignment = errors.New("malformed parameter assignment")
)
