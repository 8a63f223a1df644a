package words

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"sync"
)

// RandomPicker chooses a root word uniformly from a corpus using a seedable
// source. Two pickers built with the same seed pick the same sequence.
type RandomPicker struct {
	corpus *Corpus
	mu     sync.Mutex
	rng    *rand.Rand
}

// NewRandomPicker returns a picker seeded with seed.
func NewRandomPicker(c *Corpus, seed uint64) *RandomPicker {
	return &RandomPicker{corpus: c, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns a root word.
func (p *RandomPicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.corpus.At(p.rng.IntN(p.corpus.Len()))
}

// CryptoSeed returns a random 64-bit seed from crypto/rand.
func CryptoSeed() uint64 {
	n, err := crand.Int(crand.Reader, new(big.Int).SetUint64(^uint64(0)))
	if err != nil {
		return 0
	}
	return n.Uint64()
}
