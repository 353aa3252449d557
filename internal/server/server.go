// Package server exposes scoring and evaluation over HTTP with fasthttp.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
	"github.com/baditaflorin/go_mt_eval/internal/metrics"
	"github.com/baditaflorin/go_mt_eval/internal/pipeline"
	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// ScoreRequest asks for the scores of one reference/candidate pair.
type ScoreRequest struct {
	Reference string `json:"reference"`
	Candidate string `json:"candidate"`
	Language  string `json:"language,omitempty"`
}

// ScoreResponse carries one score per metric kind.
type ScoreResponse struct {
	Language string                        `json:"language,omitempty"`
	Scores   map[domain.MetricKind]float64 `json:"scores"`
}

// EvaluateRequest carries every (language, model) pair of an evaluation.
type EvaluateRequest struct {
	Pairs []domain.TranslationPair `json:"pairs"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Config holds per-request limits.
type Config struct {
	RequestTimeout time.Duration
}

// Server routes requests to the scoring pipeline.
type Server struct {
	config   Config
	scorer   ports.PairScorer
	pipeline *pipeline.Pipeline
	logger   ports.Logger
	metrics  fasthttp.RequestHandler
}

// New creates a server.
func New(config Config, scorer ports.PairScorer, pipe *pipeline.Pipeline, logger ports.Logger) *Server {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	return &Server{
		config:   config,
		scorer:   scorer,
		pipeline: pipe,
		logger:   logger,
		metrics:  fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Handler is the fasthttp request handler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	path := string(ctx.Path())

	ctx.Response.Header.Set("Server", "mteval")

	switch path {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/score":
		s.handleScore(ctx)
	case "/evaluate":
		s.handleEvaluate(ctx)
	case "/metrics":
		s.metrics(ctx)
	default:
		path = "other"
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	duration := time.Since(startTime)
	metrics.ObserveRequest(path, ctx.Response.StatusCode(), duration)
	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

func (s *Server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleScore(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req ScoreRequest
	if err := decode(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, err)
		return
	}

	scores := s.scorer.ScorePair(req.Reference, req.Candidate, req.Language)
	resp := ScoreResponse{
		Language: req.Language,
		Scores:   make(map[domain.MetricKind]float64, len(scores)),
	}
	for kind, score := range scores {
		resp.Scores[kind] = score.Value
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, resp)
}

func (s *Server) handleEvaluate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req EvaluateRequest
	if err := decode(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, err)
		return
	}

	c, cancel := context.WithTimeout(context.Background(), s.config.RequestTimeout)
	defer cancel()

	report, err := s.pipeline.Evaluate(c, req.Pairs)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, report)
}

// decode unmarshals body and reports type mismatches as malformed input.
func decode(body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &domain.MalformedInputError{
			Field:  typeErr.Field,
			Reason: "expected " + typeErr.Type.String() + ", got " + typeErr.Value,
		}
	}
	return &domain.MalformedInputError{Reason: err.Error()}
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		return fasthttp.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyInput), errors.Is(err, domain.ErrInconsistentScoreTable):
		return fasthttp.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return fasthttp.StatusGatewayTimeout
	default:
		return fasthttp.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, err error) {
	status := statusFor(err)
	if status >= fasthttp.StatusInternalServerError {
		s.logger.Error("Request failed", "path", string(ctx.Path()), "error", err)
	}
	ctx.SetStatusCode(status)
	s.writeJSONError(ctx, err.Error())
}

// writeJSONResponse writes a JSON response to the context.
func (s *Server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context.
func (s *Server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	ctx.SetContentType("application/json")
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
