package kernel

import (
	"github.com/pkg/errors"
)

// Attribute represents an operator attribute.
type Attribute struct {
	Name   string    // Attribute name
	F      float32   // FLOAT value
	I      int64     // INT value
	S      []byte    // STRING value
	Floats []float32 // FLOATS array
	Ints   []int64   // INTS array
}

// IntsAttr builds an integer list attribute.
func IntsAttr(name string, values ...int) Attribute {
	ints := make([]int64, len(values))
	for i, v := range values {
		ints[i] = int64(v)
	}
	return Attribute{Name: name, Ints: ints}
}

// SetAttr sets an attribute, replacing any previous one with the same name.
func (c *Context) SetAttr(attr Attribute) {
	for i := range c.attrs {
		if c.attrs[i].Name == attr.Name {
			c.attrs[i] = attr
			return
		}
	}
	c.attrs = append(c.attrs, attr)
}

// Attr returns the attribute with the given name.
func (c *Context) Attr(name string) (Attribute, bool) {
	for i := range c.attrs {
		if c.attrs[i].Name == name {
			return c.attrs[i], true
		}
	}
	return Attribute{}, false
}

// AttrInts returns an integer list attribute.
func (c *Context) AttrInts(name string) ([]int, error) {
	attr, ok := c.Attr(name)
	if !ok {
		return nil, errors.Errorf("attribute %q not found", name)
	}
	values := make([]int, len(attr.Ints))
	for i, v := range attr.Ints {
		values[i] = int(v)
	}
	return values, nil
}

// AttrInt returns an integer attribute or defaultVal.
func (c *Context) AttrInt(name string, defaultVal int64) int64 {
	if attr, ok := c.Attr(name); ok {
		return attr.I
	}
	return defaultVal
}
