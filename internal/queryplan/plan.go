// Package queryplan is the plan builder (spec §4.3): it parses a
// configuration document, instantiates modules from a registry, resolves
// symbolic input/output bindings into dense value-table indices, verifies
// argument cardinality and type compatibility, and detects cycles — turning
// a document plus a registry into a validated, runnable Plan.
package queryplan

import (
	"io"

	"github.com/google/uuid"
	"github.com/vk/flowgrid/internal/module"
)

// Plan is an ordered list of resolved Module instances (topological,
// root-first order) plus the shared channel count and dependency graph.
// Constructed atomically by Build; immutable thereafter.
type Plan struct {
	// RunID identifies this build for log correlation; no metric uses it
	// (added ambient traceability, not a spec.md-defined field).
	RunID string

	modules     []*module.Module
	numChannels int
	deps        *depGraph
}

// Modules returns the plan's modules in topological (root-first) order.
func (p *Plan) Modules() []*module.Module {
	return p.modules
}

// NumChannels returns the number of channels (ValueContext slots) the plan
// requires.
func (p *Plan) NumChannels() int {
	return p.numChannels
}

// WriteDot renders the plan's dependency graph in Graphviz DOT form.
func (p *Plan) WriteDot(w io.Writer) error {
	_, err := io.WriteString(w, p.deps.writeDot())
	return err
}

// Dependencies exposes a read-only view of the dependency graph, keyed by
// module id, for diagnostics and visualization (spec §6.3).
func (p *Plan) Dependencies() DependencyView {
	return DependencyView{g: p.deps}
}

// DependencyView is a read-only accessor over a Plan's dependency graph.
type DependencyView struct {
	g *depGraph
}

// Dependencies returns the ids the given module's inputs depend on.
func (v DependencyView) Dependencies(id string) []string {
	return v.g.Dependencies(id)
}

// Dependents returns the ids that consume the given module's outputs.
func (v DependencyView) Dependents(id string) []string {
	return v.g.Dependents(id)
}

// newRunID is split out so tests can stub it; production callers never need
// to.
var newRunID = func() string {
	return uuid.NewString()
}
