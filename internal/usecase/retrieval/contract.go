package retrieval

import (
	"context"

	"github.com/cloudwork-labs/ragline/internal/domain"
)

// Embedder vectorizes a single text (the query path).
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// BatchEmbedder vectorizes the whole corpus in one API call.
type BatchEmbedder interface {
	BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error)
}

// Generator produces the grounded answer text.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error)
}
