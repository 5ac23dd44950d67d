package domain

import "errors"

var (
	// ErrInvalidInput signals a user-correctable request problem (e.g. blank question).
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration signals missing or broken provider configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrEmbeddingProvider signals an embedding provider failure.
	ErrEmbeddingProvider = errors.New("embedding provider error")
	// ErrGenerationProvider signals a generation provider transport failure.
	ErrGenerationProvider = errors.New("generation provider error")
	// ErrEmptyGeneration signals that the generation provider returned no usable text.
	ErrEmptyGeneration = errors.New("empty generation")
	// ErrEmbeddingQuotaExceeded signals an exhausted embedding token budget.
	ErrEmbeddingQuotaExceeded = errors.New("embedding quota exceeded")
)
