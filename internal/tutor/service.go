// Package tutor turns an llm.Provider into the study helper the app
// exposes: free-form chat about schoolwork and structured reviews of
// quiz questions the student got wrong.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mchawi/sukulu/internal/llm"
	"github.com/mchawi/sukulu/internal/quiz"
)

const (
	chatMaxTokens    = 1024
	explainMaxTokens = 768

	// maxTranscript caps how many past turns are resent with each chat
	// request.
	maxTranscript = 20
)

// Service answers study questions via a configured provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a tutor backed by the given provider.
func NewService(p llm.Provider) *Service {
	return &Service{provider: p}
}

// ModelID reports which model the tutor is using.
func (s *Service) ModelID() string {
	return s.provider.ModelID()
}

// Chat sends the conversation so far and streams the reply through
// onDelta, returning the full reply text when the stream ends. Only the
// most recent turns are sent when the transcript grows long.
func (s *Service) Chat(ctx context.Context, transcript []llm.Message, onDelta func(string)) (string, error) {
	if len(transcript) == 0 {
		return "", fmt.Errorf("empty transcript")
	}
	if len(transcript) > maxTranscript {
		transcript = transcript[len(transcript)-maxTranscript:]
	}

	resp, err := s.provider.Stream(ctx, llm.Request{
		System:      chatSystemPrompt,
		Messages:    transcript,
		MaxTokens:   chatMaxTokens,
		Temperature: 0.7,
	}, onDelta)
	if err != nil {
		return "", fmt.Errorf("tutor chat: %w", err)
	}

	return resp.Text(), nil
}

// Review is the structured walkthrough of one question.
type Review struct {
	Summary       string   `json:"summary"`
	Steps         []string `json:"steps"`
	Pitfall       string   `json:"pitfall,omitempty"`
	Encouragement string   `json:"encouragement,omitempty"`
}

// Explain asks the model to walk through a quiz question. The selected
// index is the option the student chose, or -1 if they never answered.
func (s *Service) Explain(ctx context.Context, q quiz.Question, selected int) (*Review, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainPrompt(q, selected)},
		},
		Schema:    explainSchema,
		MaxTokens: explainMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("explain question: %w", err)
	}

	var review Review
	if err := json.Unmarshal(resp.Content, &review); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return &review, nil
}
