package encoding

// ParityCount returns the number of parity bits a payload of m bits needs:
// the smallest k with 2^k >= k + m + 1.
func ParityCount(m int) int {
	k := 0
	for 1<<uint(k) < k+m+1 {
		k++
	}
	return k
}

// ParityPositions returns the 1-indexed parity positions for a payload of m bits.
func ParityPositions(m int) []int {
	k := ParityCount(m)
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = 1 << uint(i)
	}
	return out
}

// PowersOfTwoUpTo lists every power of two in [1, n], ascending.
func PowersOfTwoUpTo(n int) []int {
	out := []int{}
	for p := 1; p <= n; p <<= 1 {
		out = append(out, p)
	}
	return out
}

func IsParityPosition(i int) bool {
	return i > 0 && i&(i-1) == 0
}

// CodewordLen is the total length of the codeword built from m payload bits.
func CodewordLen(m int) int {
	return m + ParityCount(m)
}

// PayloadLen inverts CodewordLen. The second result is false when no payload
// size produces a codeword of n bits.
func PayloadLen(n int) (int, bool) {
	for m := 1; m <= n; m++ {
		if l := CodewordLen(m); l == n {
			return m, true
		} else if l > n {
			break
		}
	}
	return 0, false
}
