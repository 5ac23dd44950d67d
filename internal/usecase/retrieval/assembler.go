package retrieval

import (
	"fmt"
	"strings"
)

// BuildContext serializes ranked chunks into the grounding text block for
// the generation prompt. Pure and deterministic: identical input always
// yields an identical string, which keeps prompts reproducible.
func BuildContext(chunks []Chunk) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = fmt.Sprintf("#%d [%s] (%s)\n%s", i+1, c.Title, c.Source, c.Snippet)
	}
	return strings.Join(parts, "\n\n")
}
