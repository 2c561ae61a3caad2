package format

import (
	"fmt"
	"strings"

	"github.com/harlequix/hamming/internal/encoding"
)

// Report is the outcome of one encode, corrupt and decode round.
type Report struct {
	Input    *encoding.Codeword
	Output   *encoding.Codeword
	Position int
	Syndrome int
}

func (r *Report) Located() bool {
	return r.Position == r.Syndrome
}

func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "input:   %s\n", NewBlock(r.Input))
	fmt.Fprintf(&sb, "output:  %s\n", NewBlock(r.Output))
	if r.Syndrome == 0 {
		sb.WriteString("erroneous bit: none\n")
	} else {
		fmt.Fprintf(&sb, "erroneous bit: %d\n", r.Syndrome)
	}
	return sb.String()
}

// Describe lists a codeword with its legend and one line per coverage group.
func Describe(cw *encoding.Codeword) string {
	block := NewBlock(cw)
	var sb strings.Builder
	fmt.Fprintf(&sb, "codeword: %s (%d)\n", block, cw.Value())
	fmt.Fprintf(&sb, "layout:   %s\n", block.Legend())
	for _, p := range cw.ParityPositions() {
		fmt.Fprintf(&sb, "p%-8d %s %v\n", p, block.Group(p), encoding.CoveredPositions(p, cw.Len()))
	}
	return sb.String()
}
