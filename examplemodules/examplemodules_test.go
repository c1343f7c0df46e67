package examplemodules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/examplemodules"
	"github.com/vk/flowgrid/internal/registry"
	"github.com/vk/flowgrid/internal/valuectx"
)

func TestRegisterAll(t *testing.T) {
	reg := registry.New()
	examplemodules.RegisterAll(reg)

	for _, name := range []string{"StartModule", "AddModule", "OutputModule", "ConcatModule", "CounterModule"} {
		_, err := reg.Find(name)
		require.NoError(t, err, name)
	}
}

func TestRegisterAll_TwiceOnSameRegistryPanics(t *testing.T) {
	reg := registry.New()
	examplemodules.RegisterAll(reg)
	assert.Panics(t, func() { examplemodules.RegisterAll(reg) })
}

func TestConcatModule(t *testing.T) {
	mod := examplemodules.ConcatModule.Create("cat1")
	require.NoError(t, mod.Resolve(map[string]int{"a": 0, "b": 1, "result": 2}))

	vc := valuectx.New(3)
	vc.Set(0, cty.StringVal("foo"))
	vc.Set(1, cty.StringVal("bar"))

	require.NoError(t, mod.Invoke(context.Background(), vc))
	assert.Equal(t, "foobar", vc.Get(2).AsString())
}

func TestStartModule(t *testing.T) {
	mod := examplemodules.StartModule.Create("s1")
	require.NoError(t, mod.Resolve(map[string]int{"seed": 0}))

	vc := valuectx.New(1)
	require.NoError(t, mod.Invoke(context.Background(), vc))

	f, _ := vc.Get(0).AsBigFloat().Int64()
	assert.Equal(t, int64(3), f)
}

func TestAddModule(t *testing.T) {
	mod := examplemodules.AddModule.Create("a1")
	require.NoError(t, mod.Resolve(map[string]int{"a": 0, "b": 1, "c": 2}))

	vc := valuectx.New(3)
	vc.Set(0, cty.NumberIntVal(4))
	vc.Set(1, cty.NumberIntVal(5))

	require.NoError(t, mod.Invoke(context.Background(), vc))
	f, _ := vc.Get(2).AsBigFloat().Int64()
	assert.Equal(t, int64(9), f)
}

func TestCounterModule_IncrementsAcrossInvocations(t *testing.T) {
	factory := examplemodules.NewCounterFactory()
	mod1 := factory.Create("c1")
	require.NoError(t, mod1.Resolve(map[string]int{"count": 0}))
	vc := valuectx.New(1)
	require.NoError(t, mod1.Invoke(context.Background(), vc))
	first, _ := vc.Get(0).AsBigFloat().Int64()

	mod2 := factory.Create("c2")
	require.NoError(t, mod2.Resolve(map[string]int{"count": 0}))
	require.NoError(t, mod2.Invoke(context.Background(), vc))
	second, _ := vc.Get(0).AsBigFloat().Int64()

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}
