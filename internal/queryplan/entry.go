package queryplan

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vk/flowgrid/internal/config"
)

var validate = validator.New()

// rawEntry is the structurally-validated shape of one top-level config
// entry (spec §6.1), decoded before the two-pass algorithm runs so a
// malformed document — a missing id, a module value that is not a scalar —
// fails fast with a field-level message instead of surfacing as a confusing nil
// dereference deep inside pass 1. This check never replaces a spec-defined
// error kind: UnknownModule, InconsistentCardinality, etc. still fire
// exactly as §4.3 specifies for anything that reaches that far. A numeric
// scalar is read as its text (module: 5 becomes "5") and so passes this
// check, surfacing later as UnknownModule.
type rawEntry struct {
	ID      string            `validate:"required"`
	Module  string            `validate:"required"`
	Inputs  map[string]string `validate:"dive,keys,required,endkeys,required"`
	Outputs map[string]string `validate:"dive,keys,required,endkeys,required"`
}

// decodeEntries walks the document's top-level list into validated entries,
// preserving document order (spec §4.3's determinism requirement).
func decodeEntries(doc config.Document) ([]rawEntry, error) {
	if !doc.IsList() {
		return nil, &DocumentShapeError{Detail: "top-level document must be a list of module entries"}
	}
	items := doc.AsList()
	entries := make([]rawEntry, 0, len(items))
	for i, item := range items {
		e, err := decodeEntry(item)
		if err != nil {
			return nil, fmt.Errorf("queryplan: entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeEntry(doc config.Document) (rawEntry, error) {
	var e rawEntry
	if !doc.IsMapping() {
		return e, &DocumentShapeError{Detail: "entry must be a mapping"}
	}

	if idDoc, ok := doc.Get("id"); ok {
		if s, ok := idDoc.AsString(); ok {
			e.ID = s
		}
	}
	if modDoc, ok := doc.Get("module"); ok {
		if s, ok := modDoc.AsString(); ok {
			e.Module = s
		}
	}

	var err error
	if e.Inputs, err = decodeStringMap(doc, "inputs"); err != nil {
		return e, err
	}
	if e.Outputs, err = decodeStringMap(doc, "outputs"); err != nil {
		return e, err
	}

	if err := validate.Struct(e); err != nil {
		return e, &DocumentShapeError{Detail: err.Error()}
	}
	return e, nil
}

func decodeStringMap(doc config.Document, key string) (map[string]string, error) {
	block, ok := doc.Get(key)
	if !ok {
		return nil, nil
	}
	if !block.IsMapping() {
		return nil, &DocumentShapeError{Detail: fmt.Sprintf("%s block must be a mapping", key)}
	}
	out := make(map[string]string, len(block.Keys()))
	for _, k := range block.Keys() {
		v, _ := block.Get(k)
		s, ok := v.AsString()
		if !ok {
			return nil, &DocumentShapeError{Detail: fmt.Sprintf("%s.%s must be a string", key, k)}
		}
		out[k] = s
	}
	return out, nil
}
