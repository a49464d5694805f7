// SPDX-License-Identifier: EPL-2.0

package circuit

import "errors"

var (
	ErrNilModule      = errors.New("nil circuit module")
	ErrMissingInit    = errors.New("circuit module is missing Init")
	ErrMissingProcess = errors.New("circuit module is missing Process")
	ErrMissingCleanup = errors.New("circuit module is missing Cleanup")
)
