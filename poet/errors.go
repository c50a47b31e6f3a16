// SPDX-License-Identifier: MIT
// Package: graphpoet/poet
//
// errors.go: sentinel errors for the poet package.

package poet

import "errors"

// ErrNilGraph indicates New was given no graph.
var ErrNilGraph = errors.New("poet: graph is nil")
