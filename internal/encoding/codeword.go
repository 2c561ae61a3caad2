package encoding

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

type State int

const (
	Raw State = iota
	Spaced
	Populated
)

func (s State) String() string {
	switch s {
	case Raw:
		return "raw"
	case Spaced:
		return "spaced"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// Codeword is a payload plus, once spaced, its parity bits. Position i is
// Bits[i-1].
type Codeword struct {
	Bits       []Bit
	PayloadLen int
	State      State
}

func New(payload uint64) *Codeword {
	bs := FromUint(payload)
	return &Codeword{
		Bits:       bs,
		PayloadLen: len(bs),
		State:      Raw,
	}
}

func FromBits(bs []Bit) (*Codeword, error) {
	if len(bs) == 0 {
		return nil, ErrEmpty
	}
	field := make([]Bit, len(bs))
	copy(field, bs)
	return &Codeword{
		Bits:       field,
		PayloadLen: len(field),
		State:      Raw,
	}, nil
}

// Received wraps a full codeword as it came off the wire.
func Received(bs []Bit) (*Codeword, error) {
	if len(bs) == 0 {
		return nil, ErrEmpty
	}
	m, ok := PayloadLen(len(bs))
	if !ok {
		return nil, errors.Wrapf(ErrBadLength, "%d bits", len(bs))
	}
	field := make([]Bit, len(bs))
	copy(field, bs)
	return &Codeword{
		Bits:       field,
		PayloadLen: m,
		State:      Populated,
	}, nil
}

// Encode builds the populated codeword for payload.
func Encode(payload uint64) *Codeword {
	cw := New(payload)
	// neither step can fail on a fresh codeword
	_ = cw.MakeSpace()
	_ = cw.PopulateParity()
	return cw
}

func (cw *Codeword) Len() int {
	return len(cw.Bits)
}

func (cw *Codeword) ParityPositions() []int {
	return ParityPositions(cw.PayloadLen)
}

func (cw *Codeword) CoverageGroups() [][]int {
	return CoverageGroups(cw.ParityPositions(), cw.Len())
}

// MakeSpace inserts a zero bit at every parity position. Positions are
// ascending, so each insertion lands at its final index.
func (cw *Codeword) MakeSpace() error {
	if cw.State != Raw {
		return errors.Wrapf(ErrState, "make space on %s codeword", cw.State)
	}
	field := make([]Bit, 0, CodewordLen(cw.PayloadLen))
	field = append(field, cw.Bits...)
	for _, pos := range cw.ParityPositions() {
		field = append(field, 0)
		copy(field[pos:], field[pos-1:])
		field[pos-1] = 0
	}
	cw.Bits = field
	cw.State = Spaced
	return nil
}

func (cw *Codeword) PopulateParity() error {
	if cw.State != Spaced {
		return errors.Wrapf(ErrState, "populate parity on %s codeword", cw.State)
	}
	positions := cw.ParityPositions()
	for i, par := range ComputeParity(cw.Bits, positions) {
		cw.Bits[positions[i]-1] = par
	}
	cw.State = Populated
	return nil
}

func (cw *Codeword) FlipBit(pos int) error {
	if pos < 1 || pos > cw.Len() {
		return errors.Wrapf(ErrPositionOutOfRange, "position %d, length %d", pos, cw.Len())
	}
	cw.Bits[pos-1] = cw.Bits[pos-1].Flip()
	return nil
}

func (cw *Codeword) Syndrome() (int, error) {
	if cw.Len() == 0 {
		return 0, ErrEmpty
	}
	return Syndrome(cw.Bits, cw.ParityPositions()), nil
}

// Correct flips the bit named by the syndrome back and returns the syndrome.
func (cw *Codeword) Correct() (int, error) {
	s, err := cw.Syndrome()
	if err != nil {
		return 0, err
	}
	if s == 0 {
		return 0, nil
	}
	if s > cw.Len() {
		return s, errors.Wrapf(ErrUncorrectable, "syndrome %d, length %d", s, cw.Len())
	}
	return s, cw.FlipBit(s)
}

// Payload returns the data bits with the parity positions stripped.
func (cw *Codeword) Payload() []Bit {
	if cw.State == Raw {
		out := make([]Bit, len(cw.Bits))
		copy(out, cw.Bits)
		return out
	}
	out := make([]Bit, 0, cw.PayloadLen)
	for i, b := range cw.Bits {
		if !IsParityPosition(i + 1) {
			out = append(out, b)
		}
	}
	return out
}

func (cw *Codeword) Value() uint64 {
	return ToUint(cw.Bits)
}

// Clone returns a deep copy sharing no bits with cw.
func (cw *Codeword) Clone() *Codeword {
	out := &Codeword{}
	if err := copier.CopyWithOption(out, cw, copier.Option{DeepCopy: true}); err != nil {
		// same type on both sides
		panic(err)
	}
	return out
}

func (cw *Codeword) String() string {
	return FormatBits(cw.Bits)
}
