package fault

import (
	"github.com/harlequix/hamming/internal/encoding"
	log "github.com/harlequix/hamming/log"
)

var logger *log.Logger

func init() {
	logger = log.NewLogger("Fault")
}

// Inject flips one bit, chosen by p, in a clone of cw. cw is left untouched.
func Inject(cw *encoding.Codeword, p Picker) (*encoding.Codeword, int, error) {
	if cw.Len() == 0 {
		return nil, 0, encoding.ErrEmpty
	}
	pos := p.Pick(cw.Len())
	out := cw.Clone()
	if err := out.FlipBit(pos); err != nil {
		return nil, pos, err
	}
	logger.WithField("position", pos).WithField("codeword", out.String()).Debug("injected fault")
	return out, pos, nil
}
