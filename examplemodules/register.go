package examplemodules

import "github.com/vk/flowgrid/internal/registry"

// RegisterAll registers every example module type with reg. Registration
// is idempotent across process start only in the sense that calling it
// twice on two different registries is fine; calling it twice on the same
// registry panics on the second call (via MustRegister) with a
// *registry.AlreadyRegisteredError, per spec §4.1.
func RegisterAll(reg *registry.Registry) {
	reg.MustRegister("StartModule", StartModule)
	reg.MustRegister("AddModule", AddModule)
	reg.MustRegister("OutputModule", OutputModule)
	reg.MustRegister("ConcatModule", ConcatModule)
	reg.MustRegister("CounterModule", CounterModule)
}
