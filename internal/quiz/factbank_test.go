package quiz

import (
	"fmt"
	"testing"
)

func testEntries(n int) []BankEntry {
	entries := make([]BankEntry, n)
	for i := range n {
		entries[i] = BankEntry{
			Question:     fmt.Sprintf("Question %d?", i),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
			Explanation:  "because",
		}
	}
	return entries
}

func TestFactBank_GenerateTakesFromShuffledPool(t *testing.T) {
	bank, skipped := NewFactBankWithRand(SubjectBiology, testEntries(10), testRand(7))
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}

	qs := bank.Generate(4, DifficultyMedium)
	if len(qs) != 4 {
		t.Fatalf("Generate(4) returned %d questions", len(qs))
	}
	seen := make(map[string]bool)
	for _, q := range qs {
		if q.Subject != SubjectBiology {
			t.Errorf("question %s subject = %s, want biology", q.ID, q.Subject)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question %s in batch", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestFactBank_ShortPoolReturnsWhatItHas(t *testing.T) {
	bank, _ := NewFactBankWithRand(SubjectAgriculture, testEntries(3), testRand(8))

	qs := bank.Generate(10, DifficultyEasy)
	if len(qs) != 3 {
		t.Errorf("Generate(10) over pool of 3 returned %d questions, want 3", len(qs))
	}
}

func TestFactBank_DeterministicIDs(t *testing.T) {
	bank, _ := NewFactBankWithRand(SubjectMalawiHistory, testEntries(5), testRand(9))

	ids := make(map[string]bool)
	for _, q := range bank.Generate(5, DifficultyEasy) {
		ids[q.ID] = true
	}
	for i := range 5 {
		want := fmt.Sprintf("malawi_history-%d", i)
		if !ids[want] {
			t.Errorf("missing pool ID %s in full batch", want)
		}
	}
}

func TestFactBank_SkipsMalformedEntries(t *testing.T) {
	entries := []BankEntry{
		{Question: "fine?", Options: []string{"x", "y"}, CorrectIndex: 1},
		{Question: "", Options: []string{"x", "y"}, CorrectIndex: 0},           // no text
		{Question: "one option?", Options: []string{"x"}, CorrectIndex: 0},     // too few options
		{Question: "bad index?", Options: []string{"x", "y"}, CorrectIndex: 2}, // out of range
		{Question: "neg index?", Options: []string{"x", "y"}, CorrectIndex: -1},
	}
	bank, skipped := NewFactBankWithRand(SubjectBiology, entries, testRand(10))

	if skipped != 4 {
		t.Errorf("skipped = %d, want 4", skipped)
	}
	if bank.PoolSize() != 1 {
		t.Errorf("PoolSize = %d, want 1", bank.PoolSize())
	}
	// IDs keep their pool position even after skips.
	qs := bank.Generate(1, DifficultyEasy)
	if len(qs) != 1 || qs[0].ID != "biology-0" {
		t.Errorf("surviving entry = %+v, want ID biology-0", qs)
	}
}

func TestFactBank_ExplanationOptional(t *testing.T) {
	entries := []BankEntry{
		{Question: "q?", Options: []string{"x", "y"}, CorrectIndex: 0},
	}
	bank, skipped := NewFactBankWithRand(SubjectAgriculture, entries, testRand(11))
	if skipped != 0 {
		t.Errorf("entry without explanation was skipped")
	}
	if bank.PoolSize() != 1 {
		t.Errorf("PoolSize = %d, want 1", bank.PoolSize())
	}
}
