package document

import "fmt"

// Type is the document source format.
type Type string

// Document type constants. The set is closed: the corpus loader rejects
// anything else instead of carrying unknown strings into the pipeline.
const (
	PDF      Type = "pdf"
	Markdown Type = "markdown"
	FAQ      Type = "faq"
	Policy   Type = "policy"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	return t == PDF || t == Markdown || t == FAQ || t == Policy
}

// Document is an immutable corpus document (value object).
type Document struct {
	id      string
	title   string
	docType Type
	source  string
	content string
}

// New validates and creates a Document.
func New(id, title string, docType Type, source, content string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if title == "" {
		return Document{}, fmt.Errorf("document %q: title is required", id)
	}
	if !docType.IsValid() {
		return Document{}, fmt.Errorf("document %q: unknown type %q", id, docType)
	}
	if source == "" {
		return Document{}, fmt.Errorf("document %q: source is required", id)
	}
	if content == "" {
		return Document{}, fmt.Errorf("document %q: content is required", id)
	}

	return Document{
		id:      id,
		title:   title,
		docType: docType,
		source:  source,
		content: content,
	}, nil
}

// Reconstruct creates a Document without validation (trusted built-in corpus).
func Reconstruct(id, title string, docType Type, source, content string) Document {
	return Document{id: id, title: title, docType: docType, source: source, content: content}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Type returns the document source format.
func (d *Document) Type() Type { return d.docType }

// Source returns the provenance path of the document.
func (d *Document) Source() string { return d.source }

// Content returns the document text content.
func (d *Document) Content() string { return d.content }
