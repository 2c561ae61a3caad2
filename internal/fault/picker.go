package fault

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

const StrategyRandom string = "random"
const StrategyFixed string = "fixed"

// Picker chooses which 1-indexed position of an n-bit codeword to corrupt.
type Picker interface {
	Pick(n int) int
}

type Config struct {
	Strategy string
	Position int
	Seed     int64
}

func NewPicker(cfg Config) (Picker, error) {
	switch cfg.Strategy {
	case StrategyRandom, "":
		return NewRandomPicker(cfg.Seed), nil
	case StrategyFixed:
		if cfg.Position < 1 {
			return nil, errors.Errorf("fixed strategy needs a position >= 1, got %d", cfg.Position)
		}
		return Fixed(cfg.Position), nil
	default:
		return nil, errors.Errorf("unknown fault strategy %q", cfg.Strategy)
	}
}

type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker seeds from the clock when seed is 0.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPicker) Pick(n int) int {
	return p.rng.Intn(n) + 1
}

// Fixed always picks the same position.
type Fixed int

func (f Fixed) Pick(n int) int {
	return int(f)
}

// Sequence cycles through positions.
type Sequence struct {
	positions []int
	next      int
}

func NewSequence(positions ...int) *Sequence {
	return &Sequence{positions: positions}
}

func (s *Sequence) Pick(n int) int {
	pos := s.positions[s.next%len(s.positions)]
	s.next++
	return pos
}
