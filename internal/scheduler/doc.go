// Package scheduler runs a queryplan.Plan against a valuectx.Context.
//
// Blocking (spec §4.4) is the reference scheduler: a plain loop over the
// plan's topological order, one invoke in flight at a time. Signal (spec
// §4.5) is an equivalent-behavior pub/sub rendering of the same order,
// provided for the extensibility the design notes call for — a parallel
// variant would replace the scheduler only, not the builder.
package scheduler
