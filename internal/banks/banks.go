// Package banks loads the embedded fact-bank question pools and
// validates every entry against a JSON Schema before it reaches the
// quiz engine. A malformed entry is skipped and reported, never fatal.
package banks

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/mchawi/sukulu/internal/quiz"
)

//go:embed data/*.json
var dataFS embed.FS

// bankFiles maps each fact-bank subject to its embedded pool.
var bankFiles = map[quiz.Subject]string{
	quiz.SubjectMalawiHistory: "data/malawi_history.json",
	quiz.SubjectBiology:       "data/biology.json",
	quiz.SubjectAgriculture:   "data/agriculture.json",
}

// Problem describes one pool entry that failed validation.
type Problem struct {
	Subject quiz.Subject
	Index   int
	Err     error
}

func (p Problem) String() string {
	return fmt.Sprintf("%s[%d]: %v", p.Subject, p.Index, p.Err)
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func entryValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the
		// definition map through encoding/json.
		raw, err := json.Marshal(entrySchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal entry schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse entry schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://bank-entry.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Load reads and validates the pool for one fact-bank subject. Entries
// failing schema or bounds checks are dropped and returned as problems.
func Load(subject quiz.Subject) ([]quiz.BankEntry, []Problem, error) {
	path, ok := bankFiles[subject]
	if !ok {
		return nil, nil, fmt.Errorf("no fact bank for subject %q", subject)
	}

	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parsePool(subject, raw)
}

func parsePool(subject quiz.Subject, raw []byte) ([]quiz.BankEntry, []Problem, error) {
	schema, err := entryValidator()
	if err != nil {
		return nil, nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, fmt.Errorf("parse %s pool: %w", subject, err)
	}

	entries := make([]quiz.BankEntry, 0, len(items))
	var problems []Problem
	for i, item := range items {
		var parsed any
		if err := json.Unmarshal(item, &parsed); err != nil {
			problems = append(problems, Problem{subject, i, err})
			continue
		}
		if err := schema.Validate(parsed); err != nil {
			problems = append(problems, Problem{subject, i, err})
			continue
		}

		var entry quiz.BankEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			problems = append(problems, Problem{subject, i, err})
			continue
		}
		if entry.CorrectIndex >= len(entry.Options) {
			problems = append(problems, Problem{subject, i,
				fmt.Errorf("correctIndex %d out of range for %d options",
					entry.CorrectIndex, len(entry.Options))})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, problems, nil
}

// LoadAll loads every embedded pool.
func LoadAll() (map[quiz.Subject][]quiz.BankEntry, []Problem, error) {
	pools := make(map[quiz.Subject][]quiz.BankEntry, len(bankFiles))
	var problems []Problem
	for subject := range bankFiles {
		entries, probs, err := Load(subject)
		if err != nil {
			return nil, nil, err
		}
		pools[subject] = entries
		problems = append(problems, probs...)
	}
	return pools, problems, nil
}

// NewRepository wires the embedded pools and a math generator into a
// ready-to-use quiz repository.
func NewRepository() (*quiz.Repository, []Problem, error) {
	pools, problems, err := LoadAll()
	if err != nil {
		return nil, nil, err
	}

	factBanks := make(map[quiz.Subject]*quiz.FactBank, len(pools))
	for subject, entries := range pools {
		bank, _ := quiz.NewFactBank(subject, entries)
		factBanks[subject] = bank
	}
	return quiz.NewRepository(quiz.NewMathGenerator(), factBanks), problems, nil
}
