package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cloudwork-labs/ragline/internal/domain"
	chatuc "github.com/cloudwork-labs/ragline/internal/usecase/chat"
	healthuc "github.com/cloudwork-labs/ragline/internal/usecase/health"
	retrievaluc "github.com/cloudwork-labs/ragline/internal/usecase/retrieval"
)

// Error codes returned to API clients.
const (
	codeBadRequest         = "bad_request"
	codeInvalidInput       = "invalid_input"
	codeConfigurationError = "configuration_error"
	codeQuotaExceeded      = "embedding_quota_exceeded"
	codeEmbeddingProvider  = "embedding_provider_error"
	codeGenerationProvider = "generation_provider_error"
	codeEmptyGeneration    = "empty_generation"
	codeInternalError      = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the retrieval and chat services over HTTP.
type Server struct {
	retrieval     *retrievaluc.Service
	chat          *chatuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	retrieval *retrievaluc.Service,
	chat *chatuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		retrieval: retrieval,
		chat:      chat,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeInvalidInput),
		sentinelHandler(domain.ErrConfiguration, http.StatusInternalServerError, codeConfigurationError),
		sentinelHandler(domain.ErrEmbeddingQuotaExceeded, http.StatusPaymentRequired, codeQuotaExceeded),
		sentinelHandler(domain.ErrEmbeddingProvider, http.StatusBadGateway, codeEmbeddingProvider),
		sentinelHandler(domain.ErrEmptyGeneration, http.StatusBadGateway, codeEmptyGeneration),
		sentinelHandler(domain.ErrGenerationProvider, http.StatusBadGateway, codeGenerationProvider),
	}
	return s
}

// Mount registers the API routes on the router.
func (s *Server) Mount(r chirouter.Router) {
	r.Post("/retrieve", s.Retrieve)
	r.Post("/chat", s.Chat)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// TopK is a pointer: an absent field selects the server default, while an
// explicit 0 is clamped up to 1 by the selector.
type retrieveRequest struct {
	Question string `json:"question"`
	TopK     *int   `json:"topK"`
}

type retrievedChunk struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Source    string  `json:"source"`
	Type      string  `json:"type"`
	Score     float64 `json:"score"`
	Snippet   string  `json:"snippet"`
	Truncated bool    `json:"truncated,omitempty"`
}

type retrieveResponse struct {
	Answer         string           `json:"answer"`
	Retrieved      []retrievedChunk `json:"retrieved"`
	Model          string           `json:"model"`
	EmbeddingModel string           `json:"embeddingModel"`
}

// Retrieve handles POST /retrieve.
func (s *Server) Retrieve(w http.ResponseWriter, r *http.Request) {
	var req retrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.retrieval.Retrieve(r.Context(), req.Question, req.TopK)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	retrieved := make([]retrievedChunk, len(result.Retrieved))
	for i, c := range result.Retrieved {
		retrieved[i] = retrievedChunk{
			ID:        c.ID,
			Title:     c.Title,
			Source:    c.Source,
			Type:      string(c.Type),
			Score:     c.Score,
			Snippet:   c.Snippet,
			Truncated: c.Truncated,
		}
	}

	writeJSON(w, http.StatusOK, retrieveResponse{
		Answer:         result.Answer,
		Retrieved:      retrieved,
		Model:          result.GenerationModel,
		EmbeddingModel: result.EmbeddingModel,
	})
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string        `json:"message"`
	History []chatMessage `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}

// Chat handles POST /chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	history := make([]chatuc.Message, len(req.History))
	for i, m := range req.History {
		history[i] = chatuc.Message{Role: m.Role, Content: m.Content}
	}

	reply, err := s.chat.Reply(r.Context(), req.Message, history)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply: reply,
		Model: s.chat.Model(),
	})
}

type healthResponse struct {
	Status       string            `json:"status"`
	Checks       map[string]string `json:"checks"`
	CorpusSize   int               `json:"corpusSize"`
	CorpusCached bool              `json:"corpusCached"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status:       string(report.Status),
		Checks:       checks,
		CorpusSize:   report.CorpusSize,
		CorpusCached: report.CorpusCached,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrConfiguration,
		domain.ErrEmbeddingQuotaExceeded,
		domain.ErrEmbeddingProvider,
		domain.ErrEmptyGeneration,
		domain.ErrGenerationProvider,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
