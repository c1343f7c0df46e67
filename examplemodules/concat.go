package examplemodules

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
)

// ConcatModule exercises a second concrete cty.Type (cty.String) through
// the same builder/scheduler paths the integer seed tests use: IN string
// a, IN string b, OUT string result="".
var ConcatModule module.Factory = &factory{
	sig: argspec.Signature{
		in("a", "string"),
		in("b", "string"),
		out("result", "string", ""),
	},
	handler: func(_ context.Context, _ []any, args []interface{}) error {
		a, err := asString(args[0].(cty.Value))
		if err != nil {
			return err
		}
		b, err := asString(args[1].(cty.Value))
		if err != nil {
			return err
		}
		out := args[2].(*cty.Value)
		return setString(out, a+b)
	},
}
