// Package transitcat is an offline transport-catalog query engine: given
// a bus network (stops, routes, inter-stop road distances, and routing
// parameters) it builds a time-weighted routing graph once and answers
// three kinds of query against it — per-stop and per-bus statistics, a
// rendered SVG map, and a minimum-time multi-modal route between two
// stops.
//
// The engine runs in two phases connected by a single binary artifact:
//
//	make_base          ingests a JSON network description, builds the
//	                    catalog/graph/router, and serializes all three
//	process_requests    loads that artifact and answers a batch of
//	                    stat queries without re-ingesting anything
//
// Package layout, leaves first:
//
//	geo/          great-circle distance, coordinate equality
//	catalog/      stops, buses, distances; stable integer ids
//	busbuilder/   derives a Bus's metrics from a raw route
//	routegraph/   the directed weighted graph the router solves over
//	graphbuilder/ translates a catalog into a routegraph.Graph
//	router/       all-pairs shortest paths (Floyd-Warshall) and path shaping
//	mapsvg/       SVG document builder and the transport map renderer
//	jsonutil/     request decoding and reply encoding
//	session/      the query-ready bundle of the above, and stat-request answering
//	codec/        the binary artifact format connecting the two phases
//	cmd/transitcat/ the make_base/process_requests command-line front end
//
// This package itself holds no code; it exists for the module-level
// overview above.
package transitcat
