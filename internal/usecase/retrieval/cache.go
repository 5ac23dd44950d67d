package retrieval

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cloudwork-labs/ragline/internal/domain"
	"github.com/cloudwork-labs/ragline/internal/domain/document"
	"github.com/cloudwork-labs/ragline/internal/logger"
	"github.com/cloudwork-labs/ragline/internal/metrics"
)

// EmbeddingRecord pairs a corpus document with its embedding vector.
type EmbeddingRecord struct {
	Doc    document.Document
	Vector []float32
}

// Cache lazily embeds the corpus once per process and serves the records
// from memory afterwards. Population is guarded by a mutex held across the
// provider call: concurrent first requests queue up instead of issuing
// duplicate batch calls, and no caller ever observes a partial record set.
// A failed population leaves the cache empty so a later request can retry.
type Cache struct {
	mu       sync.Mutex
	embedder BatchEmbedder
	docs     []document.Document
	records  []EmbeddingRecord
}

// NewCache creates an unpopulated cache over the given corpus.
func NewCache(docs []document.Document, embedder BatchEmbedder) *Cache {
	return &Cache{docs: docs, embedder: embedder}
}

// Ensure returns the embedding records, populating them on first call via a
// single batched embedding request covering the whole corpus.
func (c *Cache) Ensure(ctx context.Context) ([]EmbeddingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.records != nil {
		return c.records, nil
	}

	texts := make([]string, len(c.docs))
	for i, d := range c.docs {
		texts[i] = d.Content()
	}

	res, err := c.embedder.BatchEmbed(ctx, texts)
	if err != nil {
		metrics.CorpusCachePopulations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	if len(res.Embeddings) != len(c.docs) {
		metrics.CorpusCachePopulations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("corpus embedding count mismatch: %d documents, %d vectors: %w",
			len(c.docs), len(res.Embeddings), domain.ErrEmbeddingProvider)
	}

	records := make([]EmbeddingRecord, len(c.docs))
	for i, d := range c.docs {
		records[i] = EmbeddingRecord{Doc: d, Vector: res.Embeddings[i]}
	}
	c.records = records

	metrics.CorpusCachePopulations.WithLabelValues("success").Inc()
	logger.FromContext(ctx).Info("Corpus embedding cache populated",
		zap.Int("documents", len(records)),
		zap.Int("total_tokens", res.TotalTokens),
	)

	return c.records, nil
}

// Populated reports whether the cache holds a full record set.
func (c *Cache) Populated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records != nil
}

// Size returns the corpus size.
func (c *Cache) Size() int {
	return len(c.docs)
}
