package format

import (
	"testing"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlock(t *testing.T) {
	block := NewBlock(encoding.Encode(0b1010))
	assert.Equal(t, 7, block.Len())
	assert.Equal(t, "1011010", block.String())
	assert.Equal(t, "PPDPDDD", block.Legend())
	assert.Equal(t, "1_1_0_0", block.Group(1))
	assert.Equal(t, "_01__10", block.Group(2))
	assert.Equal(t, "___1010", block.Group(4))
}

func TestBlockRaw(t *testing.T) {
	block := NewBlock(encoding.New(0b1010))
	assert.Equal(t, "1010", block.String())
	assert.Equal(t, "DDDD", block.Legend())
}

func TestReport(t *testing.T) {
	in := encoding.Encode(0b1010)
	out := in.Clone()
	require.NoError(t, out.FlipBit(3))
	s, err := out.Syndrome()
	require.NoError(t, err)

	r := &Report{Input: in, Output: out, Position: 3, Syndrome: s}
	assert.True(t, r.Located())
	assert.Equal(t, "input:   1011010\noutput:  1001010\nerroneous bit: 3\n", r.String())

	clean := &Report{Input: in, Output: in.Clone()}
	assert.Equal(t, "input:   1011010\noutput:  1011010\nerroneous bit: none\n", clean.String())
}

func TestDescribe(t *testing.T) {
	want := "codeword: 1011010 (90)\n" +
		"layout:   PPDPDDD\n" +
		"p1        1_1_0_0 [1 3 5 7]\n" +
		"p2        _01__10 [2 3 6 7]\n" +
		"p4        ___1010 [4 5 6 7]\n"
	assert.Equal(t, want, Describe(encoding.Encode(0b1010)))
}
