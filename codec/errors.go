// SPDX-License-Identifier: MIT
package codec

import "errors"

// ErrBadMagic is returned by Read when the artifact does not start with
// the expected 4-byte magic string.
var ErrBadMagic = errors.New("codec: not a transitcat artifact")

// ErrUnsupportedVersion is returned by Read when the artifact's version
// field is newer (or older, pre-dating the format) than this build knows
// how to decode.
var ErrUnsupportedVersion = errors.New("codec: unsupported artifact version")

// ErrDangling is a structural-invariant violation: a bus route in the
// artifact references a stop id absent from the just-loaded catalog. This can only happen on a corrupt or hand-edited artifact; it
// is fatal.
var ErrDangling = errors.New("codec: artifact references an id not present in its own catalog")

// ErrStringTooLong is returned by Write when a name exceeds the 16-bit
// length prefix used for every string field on the wire.
var ErrStringTooLong = errors.New("codec: string exceeds 65535 bytes")

// ErrBadEdgeKind is returned by Read when an edge record carries a kind
// byte this version never writes; decoding cannot continue past it since
// the record length depends on the kind.
var ErrBadEdgeKind = errors.New("codec: unknown edge kind in artifact")
