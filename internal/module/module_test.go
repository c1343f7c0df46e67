package module_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
	"github.com/vk/flowgrid/internal/valuectx"
)

func addSignature() argspec.Signature {
	return argspec.Signature{
		{Direction: argspec.IN, DeclaredTypeName: "int", Name: "a", TypeToken: cty.Number},
		{Direction: argspec.IN, DeclaredTypeName: "int", Name: "b", TypeToken: cty.Number},
		{Direction: argspec.OUT, DeclaredTypeName: "int", Name: "c", DefaultLiteral: "0", TypeToken: cty.Number},
	}
}

func TestModule_ResolveRequiresEveryArgument(t *testing.T) {
	m := module.New("add1", addSignature(), func(context.Context, []any, []interface{}) error { return nil })

	err := m.Resolve(map[string]int{"a": 0, "b": 1})
	require.Error(t, err)

	var missing *module.MissingBindingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "c", missing.ArgName)
}

func TestModule_InvokeSeedsDefaultsAndCallsHandler(t *testing.T) {
	var gotA, gotB int64
	m := module.New("add1", addSignature(), func(_ context.Context, _ []any, args []interface{}) error {
		_ = gocty.FromCtyValue(args[0].(cty.Value), &gotA)
		_ = gocty.FromCtyValue(args[1].(cty.Value), &gotB)
		out := args[2].(*cty.Value)
		sum, err := gocty.ToCtyValue(gotA+gotB, cty.Number)
		if err != nil {
			return err
		}
		*out = sum
		return nil
	})

	require.NoError(t, m.Resolve(map[string]int{"a": 0, "b": 1, "c": 2}))

	vc := valuectx.New(3)
	av, _ := gocty.ToCtyValue(int64(2), cty.Number)
	bv, _ := gocty.ToCtyValue(int64(5), cty.Number)
	vc.Set(0, av)
	vc.Set(1, bv)

	require.NoError(t, m.Invoke(context.Background(), vc))

	var result int64
	require.NoError(t, gocty.FromCtyValue(vc.Get(2), &result))
	assert.Equal(t, int64(7), result)
}

func TestModule_InvokeBeforeResolveFails(t *testing.T) {
	m := module.New("add1", addSignature(), func(context.Context, []any, []interface{}) error { return nil })
	vc := valuectx.New(3)
	err := m.Invoke(context.Background(), vc)
	require.Error(t, err)
}
