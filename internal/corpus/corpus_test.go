package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudwork-labs/ragline/internal/domain/document"
)

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write corpus file: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeCorpusFile(t, `
documents:
  - id: faq-1
    title: よくある質問
    type: faq
    source: docs/faq.md
    content: テスト用の本文です。
  - id: policy-1
    title: ポリシー
    type: policy
    source: handbook/policy.md
    content: ポリシー本文。
`)

	docs, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID() != "faq-1" {
		t.Errorf("expected first doc 'faq-1', got %q", docs[0].ID())
	}
	if docs[1].Type() != document.Policy {
		t.Errorf("expected type policy, got %q", docs[1].Type())
	}
}

func TestLoad_UnknownTypeRejected(t *testing.T) {
	path := writeCorpusFile(t, `
documents:
  - id: doc-1
    title: Title
    type: spreadsheet
    source: docs/doc.xlsx
    content: body
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown document type")
	}
}

func TestLoad_DuplicateID(t *testing.T) {
	path := writeCorpusFile(t, `
documents:
  - id: doc-1
    title: A
    type: faq
    source: a.md
    content: body a
  - id: doc-1
    title: B
    type: faq
    source: b.md
    content: body b
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for duplicate document ID")
	}
}

func TestLoad_EmptyCorpus(t *testing.T) {
	path := writeCorpusFile(t, "documents: []\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty corpus")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSample(t *testing.T) {
	docs := Sample()
	if len(docs) != 10 {
		t.Fatalf("expected 10 sample documents, got %d", len(docs))
	}

	seen := make(map[string]bool)
	for _, d := range docs {
		if !d.Type().IsValid() {
			t.Errorf("document %q has invalid type %q", d.ID(), d.Type())
		}
		if seen[d.ID()] {
			t.Errorf("duplicate sample document ID %q", d.ID())
		}
		seen[d.ID()] = true
		if d.Content() == "" {
			t.Errorf("document %q has empty content", d.ID())
		}
	}

	if !seen["backup-drill"] || !seen["sso-setup"] {
		t.Error("expected backup-drill and sso-setup in the sample corpus")
	}
}
