// SPDX-License-Identifier: MIT
package jsonutil

import "errors"

// ErrParse is the single sentinel for malformed input JSON. A well-formed
// request that merely references an unknown stop or bus is never a parse
// error, it is an array-element "not found" reply (see Reply).
var ErrParse = errors.New("jsonutil: malformed input")

// ErrUnknownColorShape is returned by RawColor's decoder when a color
// value is neither a string nor a 3- or 4-element numeric array.
var ErrUnknownColorShape = errors.New("jsonutil: color is neither a string nor a 3/4-element array")
