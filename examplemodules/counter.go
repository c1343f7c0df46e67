package examplemodules

import (
	"context"
	"sync/atomic"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
)

// counterFactory backs CounterModule: OUT int count=0. Unlike the other
// example modules it closes over mutable state — an atomic counter shared
// by every Module instance the factory creates — to demonstrate spec §8
// property 5 precisely: "idempotent default seeding" is the engine's
// guarantee that a slot's state never survives across runs on a fresh
// ValueContext, not a constraint the engine places on what a user function's
// own closure may remember. Running a Blocking (or Signal) scheduler twice
// on two fresh contexts still increments this counter the second time, so
// channel 0 reads count=1 on the first run and count=2 on the second
// whenever the same factory instance backs both runs (as the example and
// scheduler tests do); only a freshly created factory starts again at 1.
type counterFactory struct {
	sig     argspec.Signature
	counter int64
}

// NewCounterFactory constructs a fresh counter factory; tests that want to
// observe count growth across repeated builds hold onto one instance and
// register it once.
func NewCounterFactory() module.Factory {
	return &counterFactory{
		sig: argspec.Signature{
			out("count", "int", "0"),
		},
	}
}

func (f *counterFactory) Signature() argspec.Signature {
	return f.sig
}

func (f *counterFactory) Create(id string) *module.Module {
	return module.New(id, f.sig, func(_ context.Context, _ []any, args []interface{}) error {
		n := atomic.AddInt64(&f.counter, 1)
		out := args[0].(*cty.Value)
		return setInt64(out, n)
	})
}

// CounterModule is a package-level factory instance for straightforward
// registration; its counter persists for the life of the process and is
// shared by every registry RegisterAll populates, by design.
var CounterModule = NewCounterFactory()
