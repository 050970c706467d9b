package quiz

import "testing"

func testRepository(bankSize int) *Repository {
	banks := map[Subject]*FactBank{}
	for _, s := range Subjects() {
		if s == SubjectMaths {
			continue
		}
		bank, _ := NewFactBankWithRand(s, testEntries(bankSize), testRand(20))
		banks[s] = bank
	}
	return NewRepository(NewMathGeneratorWithRand(testRand(21)), banks)
}

func TestFetch_ConcreteSubjectDelegates(t *testing.T) {
	repo := testRepository(12)

	for _, s := range Subjects() {
		qs := repo.Fetch(s, 5, DifficultyEasy)
		if len(qs) != 5 {
			t.Fatalf("Fetch(%s, 5) returned %d questions", s, len(qs))
		}
		for _, q := range qs {
			if q.Subject != s {
				t.Errorf("Fetch(%s) returned question with subject %s", s, q.Subject)
			}
		}
	}
}

func TestFetch_MathsAlwaysFills(t *testing.T) {
	repo := testRepository(2)

	qs := repo.Fetch(SubjectMaths, 50, DifficultyHard)
	if len(qs) != 50 {
		t.Errorf("Fetch(maths, 50) returned %d questions, want 50", len(qs))
	}
}

func TestFetch_RandomBlendsAllSubjects(t *testing.T) {
	repo := testRepository(12)

	qs := repo.Fetch(SubjectRandom, 20, DifficultyMedium)
	if len(qs) != 20 {
		t.Fatalf("Fetch(random, 20) returned %d questions, want 20", len(qs))
	}

	subjects := make(map[Subject]int)
	for _, q := range qs {
		subjects[q.Subject]++
	}
	for _, s := range Subjects() {
		if subjects[s] == 0 {
			t.Errorf("no %s questions in a blended batch of 20", s)
		}
	}
}

func TestFetch_RandomTopsUpFromMaths(t *testing.T) {
	// Tiny banks: each concrete bank supplies at most 2, so the blend
	// must be topped up from the math generator.
	repo := testRepository(2)

	for _, n := range []int{1, 4, 9, 20, 40} {
		qs := repo.Fetch(SubjectRandom, n, DifficultyEasy)
		if len(qs) != n {
			t.Errorf("Fetch(random, %d) returned %d questions", n, len(qs))
		}
	}
}

func TestFetch_RandomSmallCounts(t *testing.T) {
	repo := testRepository(12)

	// perBucket clamps at 1, so the pool over-fills and is truncated.
	for _, n := range []int{1, 2, 3} {
		qs := repo.Fetch(SubjectRandom, n, DifficultyEasy)
		if len(qs) != n {
			t.Errorf("Fetch(random, %d) returned %d questions", n, len(qs))
		}
	}
}

func TestFetch_BatchValidity(t *testing.T) {
	repo := testRepository(12)

	for _, q := range repo.Fetch(SubjectRandom, 30, DifficultyMedium) {
		if len(q.Options) < 2 {
			t.Errorf("question %s has %d options", q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Errorf("question %s correct index %d out of range", q.ID, q.CorrectIndex)
		}
	}
}
