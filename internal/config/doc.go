// Package config reads a hierarchical configuration document — an ordered
// list of module entries — into the abstract tree the plan builder consumes.
//
// The builder never depends on a concrete parser: Document is a thin shim
// over whatever hierarchical format produced it (YAML, JSON, HCL, ...). The
// only concrete adapter shipped here decodes JSON, because JSON is valid
// YAML 1.2 and gopkg.in/yaml.v3 is the one library in reach that preserves
// mapping key order through its yaml.Node tree — plain encoding/json
// unmarshals objects into Go maps in an unspecified order, which would make
// plan construction non-deterministic in violation of spec §4.3.
package config
