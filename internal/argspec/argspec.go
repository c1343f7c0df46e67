// Package argspec describes the declared arguments of a module type: their
// direction, static type, name, and (for outputs) default literal.
package argspec

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Direction is the flow direction of a declared argument.
type Direction int

const (
	// IN marks an argument read from the shared value context before invoke.
	IN Direction = iota
	// OUT marks an argument written into the shared value context by invoke.
	OUT
)

// String renders the direction for diagnostics.
func (d Direction) String() string {
	switch d {
	case IN:
		return "IN"
	case OUT:
		return "OUT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Spec is one declared argument of a module. It is immutable once built.
//
// TypeToken is the opaque, runtime-comparable identity of the argument's
// static type. Two arguments may be bound together iff their TypeTokens are
// cty.Type.Equals. DeclaredTypeName is purely a diagnostic label — it need
// not be unique and is never consulted for type-compatibility decisions.
type Spec struct {
	Direction        Direction
	DeclaredTypeName string
	Name             string
	DefaultLiteral   string
	TypeToken        cty.Type
}

// Signature is the ordered list of a module's declared arguments.
type Signature []Spec

// NumIn returns the count of IN arguments in the signature.
func (s Signature) NumIn() int {
	n := 0
	for _, a := range s {
		if a.Direction == IN {
			n++
		}
	}
	return n
}

// NumOut returns the count of OUT arguments in the signature.
func (s Signature) NumOut() int {
	return len(s) - s.NumIn()
}

// Validate checks the signature invariants from the data model: argument
// names are unique within the module.
func (s Signature) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, a := range s {
		if _, ok := seen[a.Name]; ok {
			return fmt.Errorf("argspec: duplicate argument name %q in signature", a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}

// ByName indexes the signature by local argument name for convenient lookup
// during resolve/invoke.
func (s Signature) ByName() map[string]Spec {
	out := make(map[string]Spec, len(s))
	for _, a := range s {
		out[a.Name] = a
	}
	return out
}
