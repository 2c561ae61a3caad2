package encoding

// CoveredPositions returns every position i in [1, n] with i&p == p,
// ascending. p covers itself.
func CoveredPositions(p, n int) []int {
	out := []int{}
	for i := 1; i <= n; i++ {
		if i&p == p {
			out = append(out, i)
		}
	}
	return out
}

func CoverageGroups(positions []int, n int) [][]int {
	groups := make([][]int, len(positions))
	for i, p := range positions {
		groups[i] = CoveredPositions(p, n)
	}
	return groups
}

// ComputeParity XOR-reduces the bits under each parity position, in the order
// of positions. On an intact populated codeword every result is zero.
func ComputeParity(bits []Bit, positions []int) []Bit {
	out := make([]Bit, len(positions))
	for i, group := range CoverageGroups(positions, len(bits)) {
		var par Bit
		for _, pos := range group {
			par = par.Xor(bits[pos-1])
		}
		out[i] = par
	}
	return out
}

// Syndrome reads the recomputed parity bits from the largest parity position
// down to position 1. Zero means no error, otherwise it is the flipped position.
func Syndrome(bits []Bit, positions []int) int {
	return int(ToUint(Reverse(ComputeParity(bits, positions))))
}
