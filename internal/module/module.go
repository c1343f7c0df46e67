// Package module defines the runtime contract a compiled module exposes to
// the plan builder and scheduler: id, signature, resolve, invoke.
package module

import (
	"context"
	"fmt"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/typetoken"
	"github.com/vk/flowgrid/internal/valuectx"
)

// HandlerFunc is the user function a module declaration wraps. args[i]
// corresponds to signature[i] in declared order: a cty.Value for an IN
// argument, a *cty.Value for an OUT argument (pre-seeded with its default).
// extra is the plan's fixed tuple of extra run-time arguments.
type HandlerFunc func(ctx context.Context, extra []any, args []interface{}) error

// Factory creates Module instances for a registered type-name. It owns the
// ModuleSignature shared by every instance it creates.
type Factory interface {
	Signature() argspec.Signature
	Create(id string) *Module
}

// Module pairs a signature with a mutable index_table — a mapping from
// local argument name to slot index into the shared value context — plus a
// unique id and the handler it was declared with.
type Module struct {
	id        string
	signature argspec.Signature
	handler   HandlerFunc

	indexTable map[string]int
	resolved   bool
}

// New constructs a Module for a factory. Factories are expected to call
// this from their Create method rather than building Module directly.
func New(id string, signature argspec.Signature, handler HandlerFunc) *Module {
	return &Module{id: id, signature: signature, handler: handler}
}

// ID returns the module's plan-unique identifier.
func (m *Module) ID() string {
	return m.id
}

// Signature returns the module's ordered argument list.
func (m *Module) Signature() argspec.Signature {
	return m.signature
}

// Resolve populates the index_table. It must be called exactly once before
// the first Invoke. It fails with a *MissingBindingError if any declared
// argument is absent from nameToSlot.
func (m *Module) Resolve(nameToSlot map[string]int) error {
	table := make(map[string]int, len(m.signature))
	for _, a := range m.signature {
		slot, ok := nameToSlot[a.Name]
		if !ok {
			return &MissingBindingError{ModuleID: m.id, ArgName: a.Name}
		}
		table[a.Name] = slot
	}
	m.indexTable = table
	m.resolved = true
	return nil
}

// IndexTable exposes the resolved name->slot mapping (read-only use by the
// builder for diagnostics and slot-coverage checks).
func (m *Module) IndexTable() map[string]int {
	return m.indexTable
}

// Invoke performs the module's computation against a shared value context.
// Precondition: Resolve has completed. Every IN slot must already hold a
// value of the declared static type — the builder having validated the plan
// is what makes that guarantee hold, so a cast failure here is a programmer
// error in the engine itself, not a possible runtime outcome for a plan
// that built successfully.
func (m *Module) Invoke(ctx context.Context, vc *valuectx.Context, extra ...any) error {
	if !m.resolved {
		return fmt.Errorf("module %s: invoke called before resolve", m.id)
	}

	args := make([]interface{}, len(m.signature))
	for i, a := range m.signature {
		slot := m.indexTable[a.Name]
		switch a.Direction {
		case argspec.IN:
			args[i] = vc.Get(slot)
		case argspec.OUT:
			def, err := typetoken.ParseDefault(a.DefaultLiteral, a.TypeToken)
			if err != nil {
				return fmt.Errorf("module %s: seeding default for %q: %w", m.id, a.Name, err)
			}
			vc.Set(slot, def)
			args[i] = vc.Ptr(slot)
		}
	}

	return m.handler(ctx, extra, args)
}

// MissingBindingError is returned by Resolve when a declared argument has
// no corresponding entry in the name->slot map.
type MissingBindingError struct {
	ModuleID string
	ArgName  string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("module %s: resolve called without a binding for argument %q", e.ModuleID, e.ArgName)
}
