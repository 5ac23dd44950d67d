package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwork-labs/ragline/internal/domain"
)

// Message is a single turn of the support conversation.
type Message struct {
	Role    string
	Content string
}

// Roles accepted in conversation history. "bot" is the legacy client alias
// for assistant turns and is normalized on the way in.
const (
	RoleUser      = "user"
	RoleBot       = "bot"
	RoleAssistant = "assistant"
)

// Generator produces the assistant reply text.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error)
}

// Service answers free-form support questions with a short rolling history
// window. Unlike the retrieval path it carries no corpus grounding.
type Service struct {
	generator       Generator
	model           string
	maxHistory      int
	maxOutputTokens int
	temperature     float32
}

// New creates a chat service.
func New(generator Generator, model string) *Service {
	return &Service{
		generator:       generator,
		model:           model,
		maxHistory:      6,
		maxOutputTokens: 400,
		temperature:     0.2,
	}
}

// WithMaxHistory overrides how many trailing history turns feed the prompt.
func (s *Service) WithMaxHistory(n int) *Service {
	if n > 0 {
		s.maxHistory = n
	}
	return s
}

// WithGeneration overrides the generation sampling settings.
func (s *Service) WithGeneration(maxOutputTokens int, temperature float32) *Service {
	if maxOutputTokens > 0 {
		s.maxOutputTokens = maxOutputTokens
	}
	if temperature > 0 {
		s.temperature = temperature
	}
	return s
}

// Model returns the generation model the service replies with.
func (s *Service) Model() string { return s.model }

// Reply generates an assistant reply for the message, given prior history.
// Only the trailing maxHistory turns are kept; blank turns are dropped.
func (s *Service) Reply(ctx context.Context, message string, history []Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message must not be blank: %w", domain.ErrInvalidInput)
	}

	res, err := s.generator.Generate(ctx, domain.GenerationRequest{
		Instructions:    supportInstructions(),
		Input:           buildTranscript(message, s.trimHistory(history)),
		MaxOutputTokens: s.maxOutputTokens,
		Temperature:     s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	reply := strings.TrimSpace(res.Text)
	if reply == "" {
		return "", fmt.Errorf("generation returned no text: %w", domain.ErrEmptyGeneration)
	}
	return reply, nil
}

func (s *Service) trimHistory(history []Message) []Message {
	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}
	return history
}

// supportInstructions is the fixed system prompt for the support assistant.
func supportInstructions() string {
	return strings.Join([]string{
		"あなたは CloudWork Manager のサポートアシスタントです。",
		"日本語で、丁寧かつ簡潔に回答してください。",
		"不明な点は推測せず、確認が必要である旨を伝えてください。",
	}, "\n")
}

// buildTranscript serializes the history and the new message into a plain
// dialogue transcript ending with an open assistant line.
func buildTranscript(message string, history []Message) string {
	var b strings.Builder
	for _, m := range history {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		if m.Role == RoleBot || m.Role == RoleAssistant {
			b.WriteString("AI: ")
		} else {
			b.WriteString("ユーザー: ")
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	b.WriteString("ユーザー: ")
	b.WriteString(message)
	b.WriteString("\nAI:")
	return b.String()
}
