package encoding

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// ASCII renderings of a bit.
const ONE byte = 49
const ZERO byte = 48

// Bit is a single binary digit. Every operation masks its result to {0,1}.
type Bit uint8

func NewBit(v uint64) Bit {
	return Bit(v & 1)
}

func (b Bit) Xor(o Bit) Bit {
	return (b ^ o) & 1
}

func (b Bit) Or(o Bit) Bit {
	return (b | o) & 1
}

func (b Bit) Flip() Bit {
	return b.Xor(1)
}

func (b Bit) Byte() byte {
	if b&1 == 1 {
		return ONE
	}
	return ZERO
}

func (b Bit) String() string {
	return string(b.Byte())
}

// FromUint returns the minimal-width binary representation of n, most
// significant bit first. Zero maps to a single zero bit.
func FromUint(n uint64) []Bit {
	width := bits.Len64(n)
	if width == 0 {
		return []Bit{0}
	}
	out := make([]Bit, width)
	for i := 0; i < width; i++ {
		out[i] = NewBit(n >> uint(width-1-i))
	}
	return out
}

// ToUint folds bits most significant first.
func ToUint(bs []Bit) uint64 {
	var result uint64
	for _, b := range bs {
		result <<= 1
		result |= uint64(b & 1)
	}
	return result
}

func Reverse(bs []Bit) []Bit {
	out := make([]Bit, len(bs))
	for i, b := range bs {
		out[len(bs)-1-i] = b
	}
	return out
}

// ParseBits reads a string of '0' and '1' characters, with an optional 0b prefix.
func ParseBits(s string) ([]Bit, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0b")
	if s == "" {
		return nil, ErrEmpty
	}
	out := make([]Bit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ONE:
			out[i] = 1
		case ZERO:
			out[i] = 0
		default:
			return nil, errors.Wrapf(ErrInvalidBit, "character %q at index %d", s[i], i)
		}
	}
	return out, nil
}

func FormatBits(bs []Bit) string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		sb.WriteByte(b.Byte())
	}
	return sb.String()
}
