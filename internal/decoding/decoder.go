package decoding

import (
	"github.com/harlequix/hamming/internal/encoding"
	log "github.com/harlequix/hamming/log"
	"github.com/pkg/errors"
)

type Result struct {
	// Syndrome is 0 when no error was detected, otherwise the corrected position.
	Syndrome  int
	Corrected *encoding.Codeword
	Payload   []encoding.Bit
	Value     uint64
}

func (r *Result) Clean() bool {
	return r.Syndrome == 0
}

type Decoder struct {
	log *log.Logger
}

func NewDecoder() *Decoder {
	return &Decoder{
		log: log.NewLogger("Decoder"),
	}
}

// Decode locates and corrects a single flipped bit in a copy of received.
func (d *Decoder) Decode(received *encoding.Codeword) (*Result, error) {
	corrected := received.Clone()
	syndrome, err := corrected.Correct()
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", received)
	}
	d.log.WithField("codeword", received.String()).WithField("syndrome", syndrome).Debug("recomputed parity")
	if syndrome != 0 {
		d.log.WithField("position", syndrome).WithField("corrected", corrected.String()).Info("corrected single bit error")
	}
	payload := corrected.Payload()
	return &Result{
		Syndrome:  syndrome,
		Corrected: corrected,
		Payload:   payload,
		Value:     encoding.ToUint(payload),
	}, nil
}

// DecodeBits wraps raw received bits and decodes them.
func (d *Decoder) DecodeBits(bits []encoding.Bit) (*Result, error) {
	cw, err := encoding.Received(bits)
	if err != nil {
		return nil, err
	}
	return d.Decode(cw)
}
