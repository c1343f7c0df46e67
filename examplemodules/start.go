package examplemodules

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
)

// StartModule is spec §8's seed source: OUT int seed=0. It has no IN
// arguments, so its computation is a fixed literal rather than anything
// derived from the value context — the seed tests use it purely to put a
// known value onto a channel.
var StartModule module.Factory = &factory{
	sig: argspec.Signature{
		out("seed", "int", "0"),
	},
	handler: func(_ context.Context, _ []any, args []interface{}) error {
		out := args[0].(*cty.Value)
		return setInt64(out, 3)
	},
}
