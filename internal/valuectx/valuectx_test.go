package valuectx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/valuectx"
)

func TestContext_NewIsAllNil(t *testing.T) {
	vc := valuectx.New(3)
	assert.Equal(t, 3, vc.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, cty.NilVal, vc.Get(i))
	}
}

func TestContext_SetGet(t *testing.T) {
	vc := valuectx.New(2)
	vc.Set(0, cty.NumberIntVal(7))
	assert.Equal(t, cty.NumberIntVal(7), vc.Get(0))
}

func TestContext_PtrWritesThrough(t *testing.T) {
	vc := valuectx.New(1)
	p := vc.Ptr(0)
	*p = cty.StringVal("hi")
	assert.Equal(t, cty.StringVal("hi"), vc.Get(0))
}
