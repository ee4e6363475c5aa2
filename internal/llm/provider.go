package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over generative text services. The standards
// matcher, problem generator and material extractor all talk to it and
// nothing else.
type Provider interface {
	// Generate sends a prompt to the service and returns its output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the returned Content is validated
	// JSON. Without a Schema the Content is the raw text of the reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System is the system prompt establishing role and constraints.
	System string

	// Messages is the conversation. Every caller in this codebase sends
	// exactly one user message.
	Messages []Message

	// Schema, when set, constrains the response to a JSON shape and
	// enables post-hoc validation. Nil means free-form text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means the provider
	// default.
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

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (tool name for Anthropic,
	// schema name for OpenAI).
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the service's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// had a Schema, otherwise the raw reply text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across providers to StopEnd or StopMaxTokens.
	StopReason string
}

// Truncated reports whether the response was cut off by the token limit.
// Callers decoding JSON arrays use this to decide whether a parse failure
// should be routed through salvage.
func (r *Response) Truncated() bool {
	return r.StopReason == StopMaxTokens
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
