// Package valuectx holds the dense, type-erased sequence of slots a
// scheduler run passes between modules.
package valuectx

import "github.com/zclconf/go-cty/cty"

// Context is a sequence of type-erased values, one per channel. Its length
// equals the plan's num_channels. Slots hold whatever dynamic value the
// producing module stored; an unwritten slot holds cty.NilVal.
type Context struct {
	slots []cty.Value
}

// New constructs a Context of the given length with every slot unset.
func New(numChannels int) *Context {
	slots := make([]cty.Value, numChannels)
	for i := range slots {
		slots[i] = cty.NilVal
	}
	return &Context{slots: slots}
}

// Len returns the number of channels (slots) in this context.
func (c *Context) Len() int {
	return len(c.slots)
}

// Get returns the current value of a slot.
func (c *Context) Get(slot int) cty.Value {
	return c.slots[slot]
}

// Set overwrites the value of a slot.
func (c *Context) Set(slot int, v cty.Value) {
	c.slots[slot] = v
}

// Ptr returns a pointer to the slot's backing storage, used to let a
// module's OUT arguments be written by mutable reference during invoke.
func (c *Context) Ptr(slot int) *cty.Value {
	return &c.slots[slot]
}
