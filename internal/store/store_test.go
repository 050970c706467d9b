package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mchawi/sukulu/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPreferences_DefaultsWhenEmpty(t *testing.T) {
	s := openTestStore(t)

	p, err := s.Preferences(context.Background())
	if err != nil {
		t.Fatalf("load preferences: %v", err)
	}
	want := DefaultPreferences()
	if p != want {
		t.Errorf("empty store preferences = %+v, want %+v", p, want)
	}
}

func TestPreferences_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved := Preferences{
		PlayerName: "Chikondi",
		Subject:    quiz.SubjectBiology,
		Difficulty: quiz.DifficultyHard,
		Length:     15,
	}
	if err := s.SavePreferences(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Preferences(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != saved {
		t.Errorf("loaded %+v, want %+v", got, saved)
	}
}

func TestPreferences_SecondSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := DefaultPreferences()
	first.PlayerName = "Mary"
	if err := s.SavePreferences(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := first
	second.Subject = quiz.SubjectMaths
	second.Length = 5
	if err := s.SavePreferences(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Preferences(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != second {
		t.Errorf("loaded %+v, want %+v", got, second)
	}
}

func TestPreferences_BadStoredValuesFallBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO preferences (id, player_name, subject, difficulty, length)
		 VALUES (1, 'x', 'astrology', 'impossible', -3)`)
	if err != nil {
		t.Fatalf("seed bad row: %v", err)
	}

	got, err := s.Preferences(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultPreferences()
	if got.Subject != want.Subject || got.Difficulty != want.Difficulty || got.Length != want.Length {
		t.Errorf("bad row loaded as %+v, want defaults %+v", got, want)
	}
}
