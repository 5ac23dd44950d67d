package retrieval

import (
	"math"
	"sort"

	"github.com/cloudwork-labs/ragline/internal/domain/document"
)

// SnippetRunes is the display snippet length in runes. Truncation is a hard
// cut with no word-boundary awareness; rendering a marker is the caller's
// concern, signalled via Chunk.Truncated.
const SnippetRunes = 420

// Chunk is a display-ready retrieved document with its similarity score.
type Chunk struct {
	ID        string
	Title     string
	Source    string
	Type      document.Type
	Score     float64
	Snippet   string
	Truncated bool
}

// SelectTopK scores every record against the query vector and returns the k
// best as chunks, best first. k is clamped to [1, len(records)]. Equal
// scores keep corpus order (stable sort), the only deterministic tie-break
// available. Scores are rounded strictly after sorting so rounding can
// never reorder results.
func SelectTopK(queryVec []float32, records []EmbeddingRecord, k int) []Chunk {
	if len(records) == 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}
	if k > len(records) {
		k = len(records)
	}

	type scored struct {
		rec   EmbeddingRecord
		score float64
	}
	ranked := make([]scored, len(records))
	for i, r := range records {
		ranked[i] = scored{rec: r, score: CosineSimilarity(queryVec, r.Vector)}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	chunks := make([]Chunk, k)
	for i, s := range ranked[:k] {
		snippet, truncated := truncateRunes(s.rec.Doc.Content(), SnippetRunes)
		chunks[i] = Chunk{
			ID:        s.rec.Doc.ID(),
			Title:     s.rec.Doc.Title(),
			Source:    s.rec.Doc.Source(),
			Type:      s.rec.Doc.Type(),
			Score:     round4(s.score),
			Snippet:   snippet,
			Truncated: truncated,
		}
	}
	return chunks
}

// round4 rounds to 4 decimal places, half to even.
func round4(v float64) float64 {
	return math.RoundToEven(v*10000) / 10000
}

// truncateRunes cuts s to at most n runes and reports whether it was cut.
// Runes, not bytes: the corpus is Japanese text.
func truncateRunes(s string, n int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= n {
		return s, false
	}
	return string(runes[:n]), true
}
