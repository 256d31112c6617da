// SPDX-License-Identifier: MIT
package jsonutil

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Reply is one element of the top-level stat_requests reply array. Keys
// are written in Set order, so the reply shapes stay byte-stable across
// runs without depending on map iteration order.
type Reply struct {
	pairs []replyPair
}

type replyPair struct {
	key string
	val interface{}
}

// NewReply returns an empty reply ready for Set calls.
func NewReply() *Reply {
	return &Reply{}
}

// Set appends a key/value pair and returns the receiver for chaining.
func (r *Reply) Set(key string, val interface{}) *Reply {
	r.pairs = append(r.pairs, replyPair{key: key, val: val})
	return r
}

// NotFound builds the fixed "not found" error reply carrying the
// original request_id; every stat request type falls back to this same
// shape when its target is unresolved.
func NotFound(requestID int) *Reply {
	return NewReply().Set("error_message", "not found").Set("request_id", requestID)
}

// MarshalJSON renders the reply as a JSON object with keys in Set order.
func (r *Reply) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range r.pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		keyBytes, err := json.MarshalWithOption(p.key, json.DisableHTMLEscape())
		if err != nil {
			return nil, err
		}
		b.Write(keyBytes)
		b.WriteByte(':')

		valBytes, err := json.MarshalWithOption(p.val, json.DisableHTMLEscape())
		if err != nil {
			return nil, err
		}
		b.Write(valBytes)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// EncodeReplies serializes a slice of replies as a single top-level JSON
// array, the wire shape the engine always produces for stat_requests.
func EncodeReplies(replies []*Reply) ([]byte, error) {
	return json.Marshal(replies)
}
