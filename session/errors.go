// SPDX-License-Identifier: MIT
package session

import "errors"

// ErrUnknownBaseRequestType is returned by Build when a base_requests
// element's "type" is neither "Stop" nor "Bus". Malformed-shape input is
// a parse error per the engine's error surfaces (see jsonutil.ErrParse),
// so Build wraps this alongside it rather than returning it bare.
var ErrUnknownBaseRequestType = errors.New("session: unknown base request type")

// ErrUnknownStatRequestType is returned by Answer when a stat_requests
// element's "type" is none of Stop, Bus, Map, Route.
var ErrUnknownStatRequestType = errors.New("session: unknown stat request type")

// ErrRouterNotBuilt is a structural-invariant guard: Answer must never be
// called before Build has run to completion. Well-formed callers (the
// CLI) cannot trigger this; it exists to fail loudly instead of silently
// dereferencing a nil Router.
var ErrRouterNotBuilt = errors.New("session: router not built")
