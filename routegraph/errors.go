// SPDX-License-Identifier: MIT
package routegraph

import "errors"

// ErrVertexOutOfRange is returned when an edge references a vertex beyond
// the graph's fixed vertex count.
var ErrVertexOutOfRange = errors.New("routegraph: vertex id out of range")
