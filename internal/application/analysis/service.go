package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/bryanwahyu/seedcheck/internal/application"
	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
	"github.com/bryanwahyu/seedcheck/internal/domain/questionnaire"
	"github.com/bryanwahyu/seedcheck/internal/domain/report"
	"github.com/bryanwahyu/seedcheck/internal/infra/ai/prompt"
)

// DefaultDemoDelay keeps the demo path about as slow as a live call.
const DefaultDemoDelay = 3 * time.Second

// ParseMissMode decides what a reply without any JSON turns into.
type ParseMissMode string

const (
	// ParseMissLive returns the canned content labelled "live".
	ParseMissLive ParseMissMode = "live"
	// ParseMissDemo returns the canned content labelled "demo".
	ParseMissDemo ParseMissMode = "demo"
	// ParseMissError fails the request.
	ParseMissError ParseMissMode = "error"
)

// Outcome names the interpreter branch that produced the answer.
type Outcome string

const (
	OutcomeDemo         Outcome = "demo"
	OutcomeLive         Outcome = "live"
	OutcomeParseMiss    Outcome = "parse_miss"
	OutcomeDecodeError  Outcome = "decode_error"
	OutcomeSchemaError  Outcome = "schema_error"
	OutcomeServiceError Outcome = "service_error"
)

// Config tunes the interpreter.
type Config struct {
	DemoDelay     time.Duration
	ParseMissMode ParseMissMode
	StrictTotals  bool
}

// Service runs one analysis per call. It holds no per-request state and is
// safe for concurrent use. A nil client means no model is configured and
// every call returns the demo result.
type Service struct {
	client   domai.Client
	catalog  *questionnaire.Catalog
	cfg      Config
	clock    application.Clock
	observer func(Outcome)
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces the clock used for the demo delay.
func WithClock(c application.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithObserver registers a callback invoked once per request with its outcome.
func WithObserver(fn func(Outcome)) Option {
	return func(s *Service) { s.observer = fn }
}

// NewService builds the analysis service.
func NewService(client domai.Client, catalog *questionnaire.Catalog, cfg Config, opts ...Option) *Service {
	if cfg.ParseMissMode == "" {
		cfg.ParseMissMode = ParseMissLive
	}
	if catalog == nil {
		catalog = questionnaire.Default()
	}
	s := &Service{
		client:   client,
		catalog:  catalog,
		cfg:      cfg,
		clock:    application.SystemClock{},
		observer: func(Outcome) {},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Live reports whether a model client is configured.
func (s *Service) Live() bool {
	return s.client != nil
}

// Analyze scores the answers and optional deck text. A blank deckText means
// no deck was supplied.
func (s *Service) Analyze(ctx context.Context, answers questionnaire.Answers, deckText string) (*report.AnalysisResult, error) {
	log := zap.L().With(zap.String("analysis_id", uuid.NewString()))
	start := s.clock.Now()

	if s.client == nil {
		select {
		case <-ctx.Done():
			return nil, eris.Wrap(ctx.Err(), "analysis: demo wait")
		case <-s.clock.After(s.cfg.DemoDelay):
		}
		s.observer(OutcomeDemo)
		log.Info("analysis finished", zap.String("outcome", string(OutcomeDemo)))
		return prompt.DemoResult(), nil
	}

	system := prompt.SystemPrompt()
	user := prompt.UserMessage(s.catalog, answers, deckText)

	raw, err := s.client.Complete(ctx, system, user)
	if err != nil {
		s.observer(OutcomeServiceError)
		log.Error("model call failed",
			zap.String("outcome", string(OutcomeServiceError)),
			zap.String("provider", s.client.Provider()),
			zap.String("model", s.client.Model()),
			zap.Error(err),
		)
		if errors.Is(err, domai.ErrQuotaExceeded) {
			return nil, eris.Wrap(err, "analysis: model call")
		}
		return nil, eris.Wrapf(domai.ErrServiceFailed, "analysis: %s call: %v", s.client.Provider(), err)
	}

	res, outcome, err := s.Interpret(raw)
	s.observer(outcome)

	fields := []zap.Field{
		zap.String("outcome", string(outcome)),
		zap.String("provider", s.client.Provider()),
		zap.String("model", s.client.Model()),
		zap.Bool("deck", strings.TrimSpace(deckText) != ""),
		zap.Duration("duration", s.clock.Now().Sub(start)),
	}
	switch {
	case err != nil:
		log.Error("analysis failed", append(fields, zap.Error(err))...)
		return nil, err
	case outcome == OutcomeParseMiss:
		log.Warn("model reply had no json, returned canned result",
			append(fields, zap.String("parse_miss_mode", string(s.cfg.ParseMissMode)), zap.Int("reply_len", len(raw)))...)
	default:
		log.Info("analysis finished", append(fields, zap.Int("overall_score", res.OverallScore))...)
	}
	return res, nil
}

// Interpret turns a raw model reply into a result. It never returns a
// partial result: either a validated live result, the canned result on a
// parse miss (per ParseMissMode), or an error.
func (s *Service) Interpret(raw string) (*report.AnalysisResult, Outcome, error) {
	span, branch, err := ExtractJSON(raw)
	if errors.Is(err, domai.ErrParseMiss) {
		switch s.cfg.ParseMissMode {
		case ParseMissError:
			return nil, OutcomeParseMiss, eris.Wrap(err, "analysis: interpret reply")
		case ParseMissDemo:
			return prompt.DemoResult(), OutcomeParseMiss, nil
		default:
			res := prompt.DemoResult()
			res.Mode = report.ModeLive
			return res, OutcomeParseMiss, nil
		}
	}

	res, numberProblems, err := Decode(span)
	if err != nil {
		return nil, OutcomeDecodeError, eris.Wrapf(err, "analysis: %s span", branch)
	}
	if err := validate(res, s.cfg.StrictTotals, numberProblems); err != nil {
		return nil, OutcomeSchemaError, err
	}

	res.Mode = report.ModeLive
	return res, OutcomeLive, nil
}
