// Package llm abstracts the generative-language providers the tutor
// can talk to. One interface covers single-shot structured generation
// and streaming chat; concrete providers wrap the vendor SDKs.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a generative-language API.
type Provider interface {
	// Generate sends a prompt and returns the complete response. When
	// the request carries a Schema, the provider uses its native
	// structured-output mechanism and the Content is validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Stream sends a prompt and delivers the response incrementally
	// through onDelta, returning the assembled response at the end.
	// Schema is ignored for streaming requests.
	Stream(ctx context.Context, req Request, onDelta func(string)) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. For one-shot generation it
	// holds a single user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must satisfy.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "question-walkthrough".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Text returns the response content as plain text.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
