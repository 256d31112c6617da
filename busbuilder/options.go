// SPDX-License-Identifier: MIT
// Package busbuilder assembles catalog.Bus values from a declared stop
// sequence via functional options: option constructors validate and panic
// on meaningless input, while Build itself never panics and never returns
// an error. An unresolved stop name is silently dropped, matching the
// engine's base-request tolerance policy.
package busbuilder

import "github.com/katalvlaran/transitcat/catalog"

// Option customizes a busConfig before Build runs.
type Option func(*busConfig)

type busConfig struct {
	name      string
	stopNames []string
	routeType catalog.RouteType
	settings  catalog.RouteSettings
}

// WithName sets the bus's display name. Panics on an empty name: a bus
// without a name cannot be registered in the catalog.
func WithName(name string) Option {
	if name == "" {
		panic("busbuilder: WithName(\"\")")
	}
	return func(c *busConfig) {
		c.name = name
	}
}

// WithStops sets the declared stop-name sequence, in the order given in
// the base request. Names that do not resolve against the catalog at
// Build time are dropped, not rejected here.
func WithStops(names []string) Option {
	return func(c *busConfig) {
		c.stopNames = names
	}
}

// WithRouteType sets how the declared stop sequence is traversed.
func WithRouteType(rt catalog.RouteType) Option {
	return func(c *busConfig) {
		c.routeType = rt
	}
}

// WithSettings sets the velocity/wait-time pair recorded on the built bus.
func WithSettings(s catalog.RouteSettings) Option {
	return func(c *busConfig) {
		c.settings = s
	}
}

func newBusConfig(opts ...Option) busConfig {
	var cfg busConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
