// SPDX-License-Identifier: EPL-2.0

package segment

import "errors"

var (
	ErrNegativeWindow = errors.New("negative start or duration")
)
