package examplemodules

import (
	"context"
	"fmt"
	"io"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
)

// OutputModule is spec §8's sink: IN int result. By this repo's convention
// (SPEC_FULL §4.1), this registry's fixed extra run-time argument tuple is
// a single io.Writer; Output is the one example module that actually uses
// it. A module is free to ignore extra entirely (spec §4.2) — Start, Add,
// and Concat all do.
var OutputModule module.Factory = &factory{
	sig: argspec.Signature{
		in("result", "int"),
	},
	handler: func(_ context.Context, extra []any, args []interface{}) error {
		result, err := asInt64(args[0].(cty.Value))
		if err != nil {
			return err
		}
		w, ok := writerFromExtra(extra)
		if !ok {
			return nil
		}
		_, err = fmt.Fprintln(w, result)
		return err
	},
}

func writerFromExtra(extra []any) (io.Writer, bool) {
	if len(extra) == 0 {
		return nil, false
	}
	w, ok := extra[0].(io.Writer)
	return w, ok
}
