// Package typetoken bridges the engine's dynamically-typed value slots
// (cty.Value) to textual type labels and default literals from a module
// declaration.
//
// cty.Type already gives Go a runtime-comparable type identity with value
// equality (cty.Type.Equals), so it plays the role spec.md's "type_token"
// names directly — implementations without a built-in type-identity
// mechanism are told to fake one with a monotonic integer per type; Go
// already has one in the form of cty.Type.
package typetoken

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// capsuleElem is the placeholder native type every label-specific capsule
// type wraps; its identity is irrelevant, since cty.Capsule returns a type
// distinct from every other call regardless of the native type or name
// passed to it.
var capsuleElem = reflect.TypeOf(struct{}{})

// decodeKind records, for every token this package hands out, the cty.Kind
// its seeded runtime values actually use (always one of cty.Number,
// cty.String, cty.Bool). It is kept separate from the token's own identity
// so that two declared-type labels sharing a runtime representation — "int"
// and "long long" both decode through cty.Number — still compare unequal as
// type_tokens, matching the original engine's per-declared-type identity
// (_examples/original_source/cpp/queryplan.hpp's checkInputOutputType
// compares `typeid(int) != typeid(long long)`, not a representation class).
var decodeKind = map[cty.Type]cty.Type{}

// family registers one declared-type-name label as its own type_token: a
// capsule type that is Equals only to itself, however it is decoded at
// runtime.
func family(label string, kind cty.Type) cty.Type {
	token := cty.Capsule(label, capsuleElem)
	decodeKind[token] = kind
	return token
}

// tokens is the table of recognized declared-type-name labels. Every entry
// is its own distinct type_token: two arguments bind together (see
// argspec.Spec.TypeToken) iff they declared the same label, compared
// case-insensitively by Lookup, never merely a compatible runtime
// representation.
var tokens = map[string]cty.Type{
	"int":       family("int", cty.Number),
	"integer":   family("integer", cty.Number),
	"number":    family("number", cty.Number),
	"long":      family("long", cty.Number),
	"long long": family("long long", cty.Number),
	"float":     family("float", cty.Number),
	"double":    family("double", cty.Number),
	"string":    family("string", cty.String),
	"str":       family("str", cty.String),
	"bool":      family("bool", cty.Bool),
	"boolean":   family("boolean", cty.Bool),
}

// Lookup maps a declared-type-name label from a module declaration onto its
// type_token. The label is matched case-insensitively ("INT" and "int"
// yield the same token). The returned cty.Type is unique to that label — it
// is never Equals to the token for a different label, even one backed by
// the same cty.Kind at runtime.
func Lookup(declaredTypeName string) (cty.Type, error) {
	token, ok := tokens[strings.ToLower(declaredTypeName)]
	if !ok {
		return cty.NilType, fmt.Errorf("typetoken: unknown declared type %q", declaredTypeName)
	}
	return token, nil
}

// ParseDefault evaluates a textual default literal into a cty.Value fit to
// seed a slot declared with typeToken. typeToken may be a label-specific
// token returned by Lookup, or a bare cty.Number/cty.String/cty.Bool used
// directly by a caller that already knows its runtime representation.
// Numeric bases are decimal; boolean spellings follow spf13/cast's
// permissive parsing ("true", "1", "yes", ...).
func ParseDefault(literal string, typeToken cty.Type) (cty.Value, error) {
	kind, ok := decodeKind[typeToken]
	if !ok {
		kind = typeToken
	}

	if literal == "" {
		return cty.NullVal(kind), nil
	}

	switch kind {
	case cty.Number:
		f, err := cast.ToFloat64E(literal)
		if err != nil {
			return cty.NilVal, fmt.Errorf("typetoken: default literal %q is not a number: %w", literal, err)
		}
		return gocty.ToCtyValue(f, cty.Number)
	case cty.String:
		return gocty.ToCtyValue(literal, cty.String)
	case cty.Bool:
		b, err := cast.ToBoolE(literal)
		if err != nil {
			return cty.NilVal, fmt.Errorf("typetoken: default literal %q is not a bool: %w", literal, err)
		}
		return gocty.ToCtyValue(b, cty.Bool)
	default:
		return cty.NilVal, fmt.Errorf("typetoken: no default-literal parser for type %s", kind.FriendlyName())
	}
}
