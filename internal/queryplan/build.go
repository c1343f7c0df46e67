package queryplan

import (
	"context"
	"fmt"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/config"
	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/metrics"
	"github.com/vk/flowgrid/internal/module"
	"github.com/vk/flowgrid/internal/registry"
)

// outputInfo catalogues one OUT argument discovered during pass 1: which
// module produces it, the dense slot index assigned to it, and its declared
// ArgSpec — consulted during pass 2 to type-check every input bound to it.
type outputInfo struct {
	producerID string
	slotIndex  int
	spec       argspec.Spec
}

// Build parses doc, instantiates modules from reg, resolves channel
// bindings into dense value-table slot indices, validates argument
// cardinality and type compatibility, and detects cycles, per spec §4.3's
// two-pass-plus-cycle-check algorithm. It either returns a fully validated
// Plan or fails with one of the static-validation errors in errors.go; no
// partial plan is ever returned (spec §7).
//
// This instance of the engine fixes the "extra constructor arguments" tuple
// (design notes §9) to empty: module.Factory.Create takes only the
// instance's id. A registry wanting non-empty extra constructor arguments
// would widen that interface; nothing in this repo's example modules needs
// more than their resolved signature to construct an instance.
func Build(ctx context.Context, doc config.Document, reg *registry.Registry) (*Plan, error) {
	plan, err := build(ctx, doc, reg)
	if err != nil {
		metrics.BuildsTotal.WithLabelValues(fmt.Sprintf("%T", err)).Inc()
		return nil, err
	}
	metrics.BuildsTotal.WithLabelValues("success").Inc()
	metrics.PlanModules.Observe(float64(len(plan.modules)))
	return plan, nil
}

func build(ctx context.Context, doc config.Document, reg *registry.Registry) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	entries, err := decodeEntries(doc)
	if err != nil {
		return nil, err
	}

	seenIDs := make(map[string]struct{}, len(entries))
	modulesByID := make(map[string]*module.Module, len(entries))
	sigByID := make(map[string]argspec.Signature, len(entries))
	outputs := make(map[string]*outputInfo, len(entries))
	deps := newDepGraph()

	// Pass 1 — instantiate and catalogue outputs.
	for _, e := range entries {
		if _, dup := seenIDs[e.ID]; dup {
			return nil, &DocumentShapeError{Detail: fmt.Sprintf("duplicate entry id %q", e.ID)}
		}
		seenIDs[e.ID] = struct{}{}

		factory, err := reg.Find(e.Module)
		if err != nil {
			return nil, &UnknownModuleError{EntryID: e.ID, ModuleName: e.Module}
		}
		sig := factory.Signature()
		if err := sig.Validate(); err != nil {
			return nil, &InvalidSignatureError{EntryID: e.ID, ModuleName: e.Module, Detail: err.Error()}
		}

		numIn, numOut := sig.NumIn(), sig.NumOut()
		if len(e.Inputs) != numIn {
			return nil, &InconsistentCardinalityError{EntryID: e.ID, Block: "inputs", Want: numIn, Got: len(e.Inputs)}
		}
		if len(e.Outputs) != numOut {
			return nil, &InconsistentCardinalityError{EntryID: e.ID, Block: "outputs", Want: numOut, Got: len(e.Outputs)}
		}
		for _, a := range sig {
			block, blockName := e.Outputs, "outputs"
			if a.Direction == argspec.IN {
				block, blockName = e.Inputs, "inputs"
			}
			if _, ok := block[a.Name]; !ok {
				return nil, &MissingConfigError{EntryID: e.ID, Block: blockName, ArgName: a.Name}
			}
		}

		mod := factory.Create(e.ID)
		modulesByID[e.ID] = mod
		sigByID[e.ID] = sig
		deps.addVertex(e.ID)

		for _, a := range sig {
			if a.Direction != argspec.OUT {
				continue
			}
			channel := e.Outputs[a.Name]
			if existing, ok := outputs[channel]; ok {
				return nil, &OutputConflictError{Channel: channel, FirstProducer: existing.producerID, SecondProducer: e.ID}
			}
			outputs[channel] = &outputInfo{producerID: e.ID, slotIndex: len(outputs), spec: a}
		}
	}
	numChannels := len(outputs)

	// Pass 2 — bind inputs, build index tables, add edges.
	for _, e := range entries {
		mod := modulesByID[e.ID]
		sig := sigByID[e.ID]
		nameToSlot := make(map[string]int, len(sig))

		for _, a := range sig {
			if a.Direction != argspec.OUT {
				continue
			}
			nameToSlot[a.Name] = outputs[e.Outputs[a.Name]].slotIndex
		}

		for _, a := range sig {
			if a.Direction != argspec.IN {
				continue
			}
			channel := e.Inputs[a.Name]
			info, ok := outputs[channel]
			if !ok {
				return nil, &DanglingInputError{EntryID: e.ID, ArgName: a.Name, Channel: channel}
			}
			nameToSlot[a.Name] = info.slotIndex

			if !a.TypeToken.Equals(info.spec.TypeToken) {
				return nil, &TypeMismatchError{
					EntryID:      e.ID,
					ArgName:      a.Name,
					Channel:      channel,
					ConsumerType: a.DeclaredTypeName,
					ProducerType: info.spec.DeclaredTypeName,
				}
			}
			if info.producerID == e.ID {
				return nil, &SelfDependencyError{EntryID: e.ID, Channel: channel}
			}
			deps.addEdge(info.producerID, e.ID)
		}

		if err := mod.Resolve(nameToSlot); err != nil {
			return nil, fmt.Errorf("queryplan: entry %q: %w", e.ID, err)
		}
	}

	// Cycle check: sink-removal residual-graph algorithm (§4.3). Any vertex
	// left over when no sink can be found participates in a cycle.
	order, residualDot, ok := deps.topoSortBySinkRemoval()
	if !ok {
		return nil, &CircularDependencyError{Dot: residualDot}
	}

	orderedModules := make([]*module.Module, 0, len(order))
	for _, id := range order {
		orderedModules = append(orderedModules, modulesByID[id])
	}

	plan := &Plan{
		RunID:       newRunID(),
		modules:     orderedModules,
		numChannels: numChannels,
		deps:        deps,
	}
	logger.Info("queryplan: build succeeded", "run_id", plan.RunID, "modules", len(orderedModules), "channels", numChannels)
	return plan, nil
}
