package queryplan

import "fmt"

// UnknownModuleError is returned when a config entry names a module type the
// registry has no factory for.
type UnknownModuleError struct {
	EntryID    string
	ModuleName string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("queryplan: entry %q: unknown module type %q", e.EntryID, e.ModuleName)
}

// InconsistentCardinalityError is returned when a config entry's inputs or
// outputs block has the wrong number of keys for its module's signature.
type InconsistentCardinalityError struct {
	EntryID  string
	Block    string // "inputs" or "outputs"
	Want     int
	Got      int
}

func (e *InconsistentCardinalityError) Error() string {
	return fmt.Sprintf("queryplan: entry %q: %s block has %d entries, signature declares %d", e.EntryID, e.Block, e.Got, e.Want)
}

// MissingConfigError is returned when a declared argument has no
// corresponding key in its entry's inputs/outputs block.
type MissingConfigError struct {
	EntryID string
	Block   string
	ArgName string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("queryplan: entry %q: argument %q missing from %s block", e.EntryID, e.ArgName, e.Block)
}

// OutputConflictError is returned when two modules both claim the same
// global channel name as an output.
type OutputConflictError struct {
	Channel        string
	FirstProducer  string
	SecondProducer string
}

func (e *OutputConflictError) Error() string {
	return fmt.Sprintf("queryplan: channel %q is produced by both %q and %q", e.Channel, e.FirstProducer, e.SecondProducer)
}

// DanglingInputError is returned when an input names a global channel with
// no producing output in the document.
type DanglingInputError struct {
	EntryID string
	ArgName string
	Channel string
}

func (e *DanglingInputError) Error() string {
	return fmt.Sprintf("queryplan: entry %q: input %q bound to channel %q, which no module produces", e.EntryID, e.ArgName, e.Channel)
}

// TypeMismatchError is returned when an input's declared type disagrees
// with the type of the output producing its channel.
type TypeMismatchError struct {
	EntryID        string
	ArgName        string
	Channel        string
	ConsumerType   string
	ProducerType   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("queryplan: entry %q: input %q on channel %q declared type %q but producer declared %q",
		e.EntryID, e.ArgName, e.Channel, e.ConsumerType, e.ProducerType)
}

// SelfDependencyError is returned when a module binds one of its own
// outputs as one of its inputs.
type SelfDependencyError struct {
	EntryID string
	Channel string
}

func (e *SelfDependencyError) Error() string {
	return fmt.Sprintf("queryplan: entry %q: depends on its own output via channel %q", e.EntryID, e.Channel)
}

// CircularDependencyError is returned when the dependency graph cannot be
// fully reduced by repeated sink removal. Dot carries the residual subgraph
// — the cyclic core — in Graphviz DOT form.
type CircularDependencyError struct {
	Dot string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("queryplan: circular dependency detected among modules:\n%s", e.Dot)
}

// InvalidSignatureError is returned when a registered module type's own
// signature violates the data model's invariant that argument names are
// unique within a module (argspec.Signature.Validate) — a defect in the
// module registration, not in the config document being built.
type InvalidSignatureError struct {
	EntryID    string
	ModuleName string
	Detail     string
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("queryplan: entry %q: module type %q has an invalid signature: %s", e.EntryID, e.ModuleName, e.Detail)
}

// DocumentShapeError is returned when the top-level document or an entry
// fails structural validation (e.g. via go-playground/validator) before the
// two-pass algorithm would otherwise reach it.
type DocumentShapeError struct {
	Detail string
}

func (e *DocumentShapeError) Error() string {
	return fmt.Sprintf("queryplan: malformed document: %s", e.Detail)
}
