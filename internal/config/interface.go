package config

// Document is a node in the abstract configuration tree: either an ordered
// mapping, an ordered list, or a scalar. The builder walks it structurally
// and never assumes a particular backing parser.
type Document interface {
	// IsMapping reports whether this node is an ordered string-keyed mapping.
	IsMapping() bool
	// IsList reports whether this node is an ordered list of documents.
	IsList() bool

	// Keys returns the mapping's keys in declaration order. Empty for a
	// non-mapping node.
	Keys() []string
	// Get looks up a key in a mapping node. ok is false if the node is not
	// a mapping or the key is absent.
	Get(key string) (Document, bool)

	// AsList returns a list node's elements in declaration order. Empty for
	// a non-list node.
	AsList() []Document

	// AsString returns a scalar node's string value. ok is false if the
	// node cannot be rendered as a plain string (e.g. it is a mapping).
	AsString() (string, bool)
}
