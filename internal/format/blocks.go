package format

import (
	"strings"

	"github.com/harlequix/hamming/internal/encoding"
)

// Block renders a codeword column by column, position 1 first.
type Block struct {
	field  []encoding.Bit
	spaced bool
	n      int
}

func NewBlock(cw *encoding.Codeword) *Block {
	return &Block{
		field:  cw.Bits,
		spaced: cw.State != encoding.Raw,
		n:      cw.Len(),
	}
}

func (b *Block) Len() int {
	return b.n
}

func (b *Block) String() string {
	return encoding.FormatBits(b.field)
}

// Legend marks parity columns with P and data columns with D.
func (b *Block) Legend() string {
	var sb strings.Builder
	for i := 1; i <= b.n; i++ {
		if b.spaced && encoding.IsParityPosition(i) {
			sb.WriteByte('P')
		} else {
			sb.WriteByte('D')
		}
	}
	return sb.String()
}

// Group shows only the bits covered by parity position p, '_' elsewhere.
func (b *Block) Group(p int) string {
	out := []byte(strings.Repeat("_", b.n))
	for _, pos := range encoding.CoveredPositions(p, b.n) {
		out[pos-1] = b.field[pos-1].Byte()
	}
	return string(out)
}
