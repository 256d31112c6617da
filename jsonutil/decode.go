// SPDX-License-Identifier: MIT
package jsonutil

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Decode parses a full Input document from r. Any malformed JSON, value of
// the wrong JSON type, or polymorphic-field shape mismatch is reported as
// ErrParse (absent keys are not checked and decode to zero values); the caller (cmd/transitcat) treats this as a
// fatal, process-terminating condition, never a partial result.
func Decode(r io.Reader) (*Input, error) {
	var in Input
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("jsonutil.Decode: %w: %v", ErrParse, err)
	}
	return &in, nil
}
