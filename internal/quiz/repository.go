package quiz

import "math/rand/v2"

// Repository dispatches fetch requests to the generator for the wanted
// subject, and blends all subjects for SubjectRandom.
type Repository struct {
	math  *MathGenerator
	banks map[Subject]*FactBank
	rng   *rand.Rand
}

// NewRepository builds a repository over a math generator and the
// per-subject fact banks.
func NewRepository(math *MathGenerator, banks map[Subject]*FactBank) *Repository {
	return &Repository{
		math:  math,
		banks: banks,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Fetch returns a fresh batch for the subject. For concrete subjects
// the batch may run short when a fact-bank pool is smaller than count;
// maths always fills the request.
func (r *Repository) Fetch(subject Subject, count int, difficulty Difficulty) []Question {
	if subject == SubjectRandom {
		return r.fetchRandom(count, difficulty)
	}
	if subject == SubjectMaths {
		return r.math.Generate(count, difficulty)
	}
	bank, ok := r.banks[subject]
	if !ok {
		return nil
	}
	return bank.Generate(count, difficulty)
}

// fetchRandom pulls an even share from each concrete subject, shuffles
// the blend, and tops up any shortfall from the math generator (the only
// source that can always produce more).
func (r *Repository) fetchRandom(count int, difficulty Difficulty) []Question {
	perBucket := max(1, count/4)

	pool := r.math.Generate(perBucket, difficulty)
	for _, s := range Subjects() {
		if s == SubjectMaths {
			continue
		}
		if bank, ok := r.banks[s]; ok {
			pool = append(pool, bank.Generate(perBucket, difficulty)...)
		}
	}
	r.shuffle(pool)

	if len(pool) < count {
		pool = append(pool, r.math.Generate(count-len(pool), difficulty)...)
		r.shuffle(pool)
	}
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

func (r *Repository) shuffle(qs []Question) {
	r.rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
