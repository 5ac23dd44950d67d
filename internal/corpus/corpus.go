// Package corpus provides the fixed in-memory document set the service
// retrieves from. The corpus is loaded once at startup and never mutated.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cloudwork-labs/ragline/internal/domain/document"
)

// fileDocument is the YAML representation of a corpus document.
type fileDocument struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Type    string `yaml:"type"`
	Source  string `yaml:"source"`
	Content string `yaml:"content"`
}

type corpusFile struct {
	Documents []fileDocument `yaml:"documents"`
}

// Load reads a corpus from a YAML file. Every document is validated;
// an unknown type or a duplicate ID fails the whole load.
func Load(path string) ([]document.Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	if len(f.Documents) == 0 {
		return nil, fmt.Errorf("corpus %s contains no documents", path)
	}

	docs := make([]document.Document, 0, len(f.Documents))
	seen := make(map[string]bool, len(f.Documents))
	for i, fd := range f.Documents {
		doc, err := document.New(fd.ID, fd.Title, document.Type(fd.Type), fd.Source, fd.Content)
		if err != nil {
			return nil, fmt.Errorf("corpus document [%d]: %w", i, err)
		}
		if seen[doc.ID()] {
			return nil, fmt.Errorf("corpus document [%d]: duplicate ID %q", i, doc.ID())
		}
		seen[doc.ID()] = true
		docs = append(docs, doc)
	}

	return docs, nil
}
