package quiz

import (
	"fmt"
	"math/rand/v2"
)

// BankEntry is one pre-authored question record as it appears in a
// fact-bank data file.
type BankEntry struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// FactBank serves questions sampled from a fixed pool of pre-authored
// entries for one subject.
type FactBank struct {
	subject Subject
	pool    []Question
	rng     *rand.Rand
}

// NewFactBank builds a bank for subject from pool entries. Entries that
// fail basic integrity checks (missing question, fewer than 2 options,
// out-of-range correct index) are skipped; the returned skip count lets
// callers report on pool health.
func NewFactBank(subject Subject, entries []BankEntry) (*FactBank, int) {
	return newFactBank(subject, entries, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewFactBankWithRand is NewFactBank with an injected source, for
// reproducible tests.
func NewFactBankWithRand(subject Subject, entries []BankEntry, rng *rand.Rand) (*FactBank, int) {
	return newFactBank(subject, entries, rng)
}

func newFactBank(subject Subject, entries []BankEntry, rng *rand.Rand) (*FactBank, int) {
	pool := make([]Question, 0, len(entries))
	skipped := 0
	for i, e := range entries {
		if e.Question == "" || len(e.Options) < 2 ||
			e.CorrectIndex < 0 || e.CorrectIndex >= len(e.Options) {
			skipped++
			continue
		}
		pool = append(pool, Question{
			// Pool-position IDs stay stable across shuffles.
			ID:           fmt.Sprintf("%s-%d", subject, i),
			Subject:      subject,
			Text:         e.Question,
			Options:      e.Options,
			CorrectIndex: e.CorrectIndex,
			Explanation:  e.Explanation,
		})
	}
	return &FactBank{subject: subject, pool: pool, rng: rng}, skipped
}

// Subject returns the subject this bank serves.
func (b *FactBank) Subject() Subject {
	return b.subject
}

// PoolSize returns the number of usable entries in the pool.
func (b *FactBank) PoolSize() int {
	return len(b.pool)
}

// Generate shuffles the whole pool and returns the first count
// questions. When count exceeds the pool, every entry is returned once;
// there is no padding or repetition. The difficulty parameter is
// accepted for interface symmetry but the pools are not tiered.
func (b *FactBank) Generate(count int, difficulty Difficulty) []Question {
	shuffled := make([]Question, len(b.pool))
	copy(shuffled, b.pool)
	b.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
