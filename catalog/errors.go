// SPDX-License-Identifier: MIT
package catalog

import "errors"

// Sentinel errors for the catalog package. Callers branch with errors.Is;
// messages are never matched by substring.

// ErrDuplicateStopName is returned by AddStop when the name already exists.
var ErrDuplicateStopName = errors.New("catalog: stop name already exists")

// ErrDuplicateBusName is returned by AddBus when the name already exists.
var ErrDuplicateBusName = errors.New("catalog: bus name already exists")

// ErrDuplicateStopID is returned by AddStopWithID on an id collision.
var ErrDuplicateStopID = errors.New("catalog: stop id already exists")

// ErrDuplicateBusID is returned by AddBusWithID on an id collision.
var ErrDuplicateBusID = errors.New("catalog: bus id already exists")
