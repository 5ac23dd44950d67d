package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results. CorpusCached is informational only:
// it reports whether the corpus embeddings are already cached and never
// degrades the status.
type Report struct {
	Status       Status
	Checks       map[string]CheckResult
	CorpusSize   int
	CorpusCached bool
}

// Service coordinates health checks.
type Service struct {
	embedding EmbeddingChecker
	corpus    CorpusReader
}

// New creates a Service. embedding can be nil.
func New(embedding EmbeddingChecker, corpus CorpusReader) *Service {
	return &Service{embedding: embedding, corpus: corpus}
}

// Check runs health checks against all components. An empty corpus counts as
// a failure; an unpopulated cache over a non-empty corpus does not, since the
// first retrieval populates it lazily.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	corpusSize := 0
	corpusCached := false

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			checks["embedding"] = CheckError
		} else {
			checks["embedding"] = CheckOK
		}
	}

	if s.corpus != nil {
		corpusSize = s.corpus.Size()
		corpusCached = s.corpus.Populated()
		if corpusSize == 0 {
			checks["corpus"] = CheckError
		} else {
			checks["corpus"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, CorpusSize: corpusSize, CorpusCached: corpusCached}
}
