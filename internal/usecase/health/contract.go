package health

import "context"

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}

// CorpusReader reports the state of the embedded corpus cache.
type CorpusReader interface {
	Populated() bool
	Size() int
}
