package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mchawi/sukulu/internal/quiz"
)

// Preferences is the player's remembered quiz setup.
type Preferences struct {
	PlayerName string
	Subject    quiz.Subject
	Difficulty quiz.Difficulty
	Length     int
}

// DefaultPreferences are used before the player has chosen anything.
func DefaultPreferences() Preferences {
	return Preferences{
		Subject:    quiz.SubjectRandom,
		Difficulty: quiz.DifficultyMedium,
		Length:     10,
	}
}

// Preferences loads the stored preferences, falling back to the
// defaults when nothing has been saved yet.
func (s *Store) Preferences(ctx context.Context) (Preferences, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT player_name, subject, difficulty, length FROM preferences WHERE id = 1`)

	var p Preferences
	var subject, difficulty string
	err := row.Scan(&p.PlayerName, &subject, &difficulty, &p.Length)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return Preferences{}, err
	}

	defaults := DefaultPreferences()
	if p.Subject, err = quiz.ParseSubject(subject); err != nil {
		p.Subject = defaults.Subject
	}
	if p.Difficulty, err = quiz.ParseDifficulty(difficulty); err != nil {
		p.Difficulty = defaults.Difficulty
	}
	if p.Length <= 0 {
		p.Length = defaults.Length
	}
	return p, nil
}

// SavePreferences upserts the single preferences row.
func (s *Store) SavePreferences(ctx context.Context, p Preferences) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO preferences (id, player_name, subject, difficulty, length, updated_at)
VALUES (1, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
ON CONFLICT (id) DO UPDATE SET
    player_name = excluded.player_name,
    subject     = excluded.subject,
    difficulty  = excluded.difficulty,
    length      = excluded.length,
    updated_at  = excluded.updated_at`,
		p.PlayerName, string(p.Subject), string(p.Difficulty), p.Length)
	return err
}
