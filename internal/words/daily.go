package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"sync"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index into a list of size n for the
// given date and round number: HMAC-SHA256(salt, "YYYY-MM-DD#round") mod n.
func DailyIndex(date time.Time, round int, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + "#" + strconv.Itoa(round)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// DailyPicker hands out the same sequence of root words to every player on
// a given UTC day. The sequence restarts when the day changes.
type DailyPicker struct {
	corpus *Corpus
	salt   string
	now    func() time.Time

	mu    sync.Mutex
	day   string
	round int
}

// NewDailyPicker builds a daily picker. A nil now means time.Now.
func NewDailyPicker(c *Corpus, salt string, now func() time.Time) *DailyPicker {
	if now == nil {
		now = time.Now
	}
	return &DailyPicker{corpus: c, salt: salt, now: now}
}

// Pick returns the next root word of today's sequence.
func (p *DailyPicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	t := p.now()
	if k := DateKey(t); k != p.day {
		p.day, p.round = k, 0
	}
	i := DailyIndex(t, p.round, p.salt, p.corpus.Len())
	p.round++
	return p.corpus.At(i)
}
