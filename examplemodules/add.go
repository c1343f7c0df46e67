package examplemodules

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
)

// AddModule is spec §8's seed sum: IN int a, IN int b, OUT int c=0.
var AddModule module.Factory = &factory{
	sig: argspec.Signature{
		in("a", "int"),
		in("b", "int"),
		out("c", "int", "0"),
	},
	handler: func(_ context.Context, _ []any, args []interface{}) error {
		a, err := asInt64(args[0].(cty.Value))
		if err != nil {
			return err
		}
		b, err := asInt64(args[1].(cty.Value))
		if err != nil {
			return err
		}
		out := args[2].(*cty.Value)
		return setInt64(out, a+b)
	},
}
