package domain

import "context"

// Generator is the text generation contract between layers.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (GenerationResult, error)
}

// GenerationRequest describes a single generation call.
type GenerationRequest struct {
	Instructions    string
	Input           string
	MaxOutputTokens int
	Temperature     float32
}

// GenerationResult carries the generated text and token usage.
type GenerationResult struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
