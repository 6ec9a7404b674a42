package main

import (
	"testing"

	"github.com/born-ml/crop/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	shape, err := parseInts("5, 5,2")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{5, 5, 2}, shape)

	shape, err = parseInts("")
	require.NoError(t, err)
	assert.Empty(t, shape)

	_, err = parseInts("3,x")
	assert.Error(t, err)
}

func TestParseDType(t *testing.T) {
	dtype, err := parseDType("float16")
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, dtype)

	_, err = parseDType("bool")
	assert.True(t, errors.Is(err, tensor.ErrUnsupportedDType))
}

func TestFormatValues(t *testing.T) {
	raw := must.M1(tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int32, tensor.CPU))
	fillSequence(raw)
	assert.Equal(t, "1 2 3\n4 5 6", formatValues(raw))
}
