package retrieval

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cloudwork-labs/ragline/internal/domain"
	"github.com/cloudwork-labs/ragline/internal/logger"
)

// Result is the answer to a retrieval request, with its grounding chunks
// in rank order (best first).
type Result struct {
	Answer          string
	Retrieved       []Chunk
	GenerationModel string
	EmbeddingModel  string
}

// Service orchestrates a retrieval request: validate, ensure the corpus
// cache, embed the query, rank, select, assemble, generate.
type Service struct {
	cache           *Cache
	queryEmbedder   Embedder
	generator       Generator
	embeddingModel  string
	generationModel string
	defaultTopK     int
	maxOutputTokens int
	temperature     float32
}

// New creates a retrieval service.
func New(cache *Cache, queryEmbedder Embedder, generator Generator, embeddingModel, generationModel string) *Service {
	return &Service{
		cache:           cache,
		queryEmbedder:   queryEmbedder,
		generator:       generator,
		embeddingModel:  embeddingModel,
		generationModel: generationModel,
		defaultTopK:     3,
		maxOutputTokens: 400,
		temperature:     0.2,
	}
}

// WithDefaultTopK overrides the default number of retrieved chunks.
func (s *Service) WithDefaultTopK(k int) *Service {
	if k > 0 {
		s.defaultTopK = k
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

// Retrieve answers a question grounded in the corpus. A nil topK selects the
// default; an explicit value goes through the selector's clamp, so 0 or a
// negative becomes 1 and values above the corpus size are capped, not
// rejected.
func (s *Service) Retrieve(ctx context.Context, question string, topK *int) (Result, error) {
	if strings.TrimSpace(question) == "" {
		return Result{}, fmt.Errorf("question must not be blank: %w", domain.ErrInvalidInput)
	}
	k := s.defaultTopK
	if topK != nil {
		k = *topK
	}

	records, err := s.cache.Ensure(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("ensure corpus embeddings: %w", err)
	}

	embRes, err := s.queryEmbedder.Embed(ctx, question)
	if err != nil {
		return Result{}, fmt.Errorf("embed question: %w", err)
	}
	if len(embRes.Embedding) == 0 {
		return Result{}, fmt.Errorf("provider returned no query embedding: %w", domain.ErrEmbeddingProvider)
	}

	// A dimension mismatch scores every document 0. That is almost always a
	// misconfigured embedding model, not genuine dissimilarity, so surface it.
	if len(records) > 0 && len(records[0].Vector) != len(embRes.Embedding) {
		logger.FromContext(ctx).Warn("query/corpus embedding dimension mismatch",
			zap.Int("query_dim", len(embRes.Embedding)),
			zap.Int("corpus_dim", len(records[0].Vector)),
			zap.String("embedding_model", s.embeddingModel),
		)
	}

	chunks := SelectTopK(embRes.Embedding, records, k)

	genRes, err := s.generator.Generate(ctx, domain.GenerationRequest{
		Instructions:    answerInstructions(),
		Input:           buildPrompt(BuildContext(chunks), question),
		MaxOutputTokens: s.maxOutputTokens,
		Temperature:     s.temperature,
	})
	if err != nil {
		return Result{}, fmt.Errorf("generate answer: %w", err)
	}

	answer := strings.TrimSpace(genRes.Text)
	if answer == "" {
		return Result{}, fmt.Errorf("generation returned no text: %w", domain.ErrEmptyGeneration)
	}

	return Result{
		Answer:          answer,
		Retrieved:       chunks,
		GenerationModel: s.generationModel,
		EmbeddingModel:  s.embeddingModel,
	}, nil
}
