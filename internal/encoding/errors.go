package encoding

import "github.com/pkg/errors"

var (
	ErrEmpty              = errors.New("codeword has no bits")
	ErrInvalidBit         = errors.New("invalid bit")
	ErrPositionOutOfRange = errors.New("bit position out of range")
	ErrState              = errors.New("operation not allowed in current codeword state")
	ErrBadLength          = errors.New("length is not a valid codeword length")
	ErrUncorrectable      = errors.New("syndrome names a position outside the codeword")
)
