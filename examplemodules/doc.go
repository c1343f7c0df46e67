// Package examplemodules provides the handful of module types the seed
// tests in spec §8 exercise (Start, Add, Output) plus two this repo adds to
// walk a second concrete type (Concat, over cty.String) and demonstrate
// that the engine's "re-running a scheduler is side-effect-free" guarantee
// is about slot state, not user-function state (Counter, §8 property 5).
//
// Out of scope per spec.md §1: these are the "trivial, out-of-scope"
// example modules the engine's own tests need to compile and run, not part
// of the engine itself.
package examplemodules

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
	"github.com/vk/flowgrid/internal/typetoken"
)

// factory is the generic module.Factory every declaration below builds:
// a fixed signature plus a handler closure, mirroring the teacher's
// "macros produce a struct-of-arguments and an invoke trampoline per module
// type" design note (§9) without reflection — each handler already knows
// its own signature and indexes args by position.
type factory struct {
	sig     argspec.Signature
	handler module.HandlerFunc
}

func (f *factory) Signature() argspec.Signature {
	return f.sig
}

func (f *factory) Create(id string) *module.Module {
	return module.New(id, f.sig, f.handler)
}

func mustSpec(direction argspec.Direction, name, typeName, defaultLiteral string) argspec.Spec {
	tok, err := typetoken.Lookup(typeName)
	if err != nil {
		panic(fmt.Sprintf("examplemodules: %s: %v", name, err))
	}
	return argspec.Spec{
		Direction:        direction,
		DeclaredTypeName: typeName,
		Name:             name,
		DefaultLiteral:   defaultLiteral,
		TypeToken:        tok,
	}
}

func in(name, typeName string) argspec.Spec {
	return mustSpec(argspec.IN, name, typeName, "")
}

func out(name, typeName, defaultLiteral string) argspec.Spec {
	return mustSpec(argspec.OUT, name, typeName, defaultLiteral)
}

// asInt64 reads an IN argument's cty.Number value as an int64.
func asInt64(v cty.Value) (int64, error) {
	var i int64
	if err := gocty.FromCtyValue(v, &i); err != nil {
		return 0, err
	}
	return i, nil
}

// asString reads an IN argument's cty.String value.
func asString(v cty.Value) (string, error) {
	var s string
	if err := gocty.FromCtyValue(v, &s); err != nil {
		return "", err
	}
	return s, nil
}

// setInt64 writes an int64 into an OUT argument's slot.
func setInt64(out *cty.Value, i int64) error {
	v, err := gocty.ToCtyValue(i, cty.Number)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// setString writes a string into an OUT argument's slot.
func setString(out *cty.Value, s string) error {
	v, err := gocty.ToCtyValue(s, cty.String)
	if err != nil {
		return err
	}
	*out = v
	return nil
}
