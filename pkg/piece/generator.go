package piece

import (
	"math/rand/v2"
	"sync"

	"github.com/huynhanx03/go-tetris/pkg/timer"
	"github.com/huynhanx03/go-tetris/pkg/unique"
)

// pcgStream is the fixed second word of the PCG state.
const pcgStream = 0x9e3779b97f4a7c15

// ids is the process-wide identifier sequence. It starts at zero with the
// process and is only advanced through Generator.Next.
var ids unique.Sequence

type options struct {
	seed   uint64
	seeded bool
	clock  timer.Timer
	seq    *unique.Sequence
}

// Option configures a Generator.
type Option func(*options)

// WithSeed makes the symbol stream reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithClock sets the clock used to seed the generator when no fixed seed is given.
func WithClock(clock timer.Timer) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithSequence draws identifiers from seq instead of the process-wide sequence.
func WithSequence(seq *unique.Sequence) Option {
	return func(o *options) {
		o.seq = seq
	}
}

// Generator produces pieces with uniformly random symbols and strictly
// increasing identifiers.
type Generator struct {
	mu       sync.Mutex
	alphabet Alphabet
	rng      *rand.Rand
	seq      *unique.Sequence
}

// NewGenerator creates a generator over alphabet. An empty alphabet falls
// back to Classic.
func NewGenerator(alphabet Alphabet, opts ...Option) *Generator {
	o := options{
		clock: timer.SystemTimer{},
		seq:   &ids,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(alphabet) == 0 {
		alphabet = Classic
	}

	seed := o.seed
	if !o.seeded {
		seed = uint64(o.clock.Now().UnixNano())
	}

	return &Generator{
		alphabet: append(Alphabet(nil), alphabet...),
		rng:      rand.New(rand.NewPCG(seed, seed^pcgStream)),
		seq:      o.seq,
	}
}

// Next creates a new piece. The identifier is taken before the sequence advances.
func (g *Generator) Next() Piece {
	g.mu.Lock()
	defer g.mu.Unlock()

	sym := g.alphabet[g.rng.IntN(len(g.alphabet))]
	return Piece{Symbol: sym, ID: g.seq.Next()}
}

// Alphabet returns a copy of the symbols the generator draws from.
func (g *Generator) Alphabet() Alphabet {
	return append(Alphabet(nil), g.alphabet...)
}
