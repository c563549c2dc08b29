package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	appanalysis "github.com/bryanwahyu/seedcheck/internal/application/analysis"
	appdeck "github.com/bryanwahyu/seedcheck/internal/application/deck"
	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
	domdeck "github.com/bryanwahyu/seedcheck/internal/domain/deck"
	"github.com/bryanwahyu/seedcheck/internal/domain/questionnaire"
	"github.com/bryanwahyu/seedcheck/internal/middleware"
)

const (
	msgAnalysisFailed = "Analysis failed. Please try again."
	msgNoFile         = "No file uploaded"
	msgBadType        = "Only .pdf and .pptx files are supported"
	msgParseFailed    = "Failed to parse the file. Please try a different file or format."

	// multipart framing and form fields on top of the file itself
	uploadOverhead = 1 << 20
)

// Options tunes the HTTP surface.
type Options struct {
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxDeckBytes   int64
	// TrustProxyHeaders takes the client IP from X-Forwarded-For/X-Real-IP.
	// Only enable behind a proxy that overwrites those headers; otherwise
	// clients can pick their own rate limit key.
	TrustProxyHeaders bool
	// ReadyChecks run on GET /health/ready.
	ReadyChecks map[string]middleware.HealthChecker
}

type Router struct {
	analysisSvc *appanalysis.Service
	deckSvc     *appdeck.Service
	catalog     *questionnaire.Catalog
	maxDeck     int64
}

func NewRouter(analysisSvc *appanalysis.Service, deckSvc *appdeck.Service, catalog *questionnaire.Catalog, opts Options) http.Handler {
	if catalog == nil {
		catalog = questionnaire.Default()
	}
	if opts.MaxDeckBytes <= 0 {
		opts.MaxDeckBytes = domdeck.MaxBytes
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	if opts.RateLimitRPS <= 0 {
		opts.RateLimitRPS = 1
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 5
	}

	r := &Router{analysisSvc: analysisSvc, deckSvc: deckSvc, catalog: catalog, maxDeck: opts.MaxDeckBytes}
	mux := chi.NewRouter()

	if opts.TrustProxyHeaders {
		mux.Use(chimw.RealIP)
	}
	mux.Use(middleware.RequestID)
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	mode := "demo"
	if analysisSvc != nil && analysisSvc.Live() {
		mode = "live"
	}
	mux.Get("/health", middleware.LivenessHandler)
	mux.Get("/health/ready", middleware.HealthHandler(opts.ReadyChecks, mode))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/questions", r.wrap(r.handleQuestions))
		rt.Group(func(limited chi.Router) {
			limited.Use(middleware.RateLimitMiddleware(opts.RateLimitRPS, opts.RateLimitBurst))
			limited.Post("/analyze", r.wrap(r.handleAnalyze))
			limited.Post("/parse-deck", r.wrap(r.handleParseDeck))
		})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest is a client error whose message is safe to show.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		status, msg := r.statusFor(err)
		if status >= http.StatusInternalServerError {
			zap.L().Error("request failed",
				zap.String("path", req.URL.Path),
				zap.String("request_id", middleware.GetRequestID(req.Context())),
				zap.Error(err),
			)
		}
		writeError(w, status, msg)
	}
}

func (r *Router) statusFor(err error) (int, string) {
	var br badRequest
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest, br.msg
	case errors.Is(err, domdeck.ErrNoFile):
		return http.StatusBadRequest, msgNoFile
	case errors.Is(err, domdeck.ErrUnsupportedType):
		return http.StatusBadRequest, msgBadType
	case errors.Is(err, domdeck.ErrTooLarge), errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge, r.tooLargeMessage()
	case errors.Is(err, domdeck.ErrExtraction):
		return http.StatusInternalServerError, msgParseFailed
	case errors.Is(err, domai.ErrQuotaExceeded):
		return http.StatusTooManyRequests, msgAnalysisFailed
	default:
		// ErrServiceFailed, ErrParseMiss, ErrDecode, ErrSchemaViolation and
		// anything unexpected are flattened into one message
		return http.StatusInternalServerError, msgAnalysisFailed
	}
}

func (r *Router) tooLargeMessage() string {
	return fmt.Sprintf("File is too large (max %dMB)", r.maxDeck>>20)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg}) //nolint:errcheck
}

type analyzeRequest struct {
	Questionnaire questionnaire.Answers `json:"questionnaire"`
	DeckContent   *string               `json:"deckContent"`
}

// POST /api/analyze
// Body: {"questionnaire": {"a1": "...", "e1": [{"name": ...}]}, "deckContent": "..." | null}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxDeck+uploadOverhead)

	var body analyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return err
		}
		return badRequest{msg: "Invalid request body"}
	}

	ids := make([]string, 0, len(body.Questionnaire))
	for id := range body.Questionnaire {
		ids = append(ids, id)
	}
	if err := middleware.ValidateAnswerIDs(ids); err != nil {
		return badRequest{msg: err.Error()}
	}

	var deckText string
	if body.DeckContent != nil {
		deckText = *body.DeckContent
	}

	res, err := r.analysisSvc.Analyze(req.Context(), body.Questionnaire, deckText)
	if err != nil {
		return eris.Wrap(err, "handle analyze")
	}
	return writeJSON(w, http.StatusOK, res)
}

// POST /api/parse-deck
// multipart/form-data, field "file"
func (r *Router) handleParseDeck(w http.ResponseWriter, req *http.Request) (err error) {
	defer func() {
		if err != nil {
			middleware.IncrementDecksRejected()
		}
	}()

	req.Body = http.MaxBytesReader(w, req.Body, r.maxDeck+uploadOverhead)
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return err
		}
		return domdeck.ErrNoFile
	}
	defer req.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := req.FormFile("file")
	if err != nil {
		return domdeck.ErrNoFile
	}
	defer file.Close() //nolint:errcheck

	name, err := middleware.ValidateUploadName(header.Filename)
	if err != nil {
		return domdeck.ErrNoFile
	}
	// same order as ParseDeck: type, then size
	if _, ok := appdeck.FileTypeOf(name); !ok {
		return eris.Wrapf(domdeck.ErrUnsupportedType, "parse deck: %q", name)
	}
	if header.Size > r.maxDeck {
		return eris.Wrapf(domdeck.ErrTooLarge, "parse deck: %d bytes", header.Size)
	}

	data, err := io.ReadAll(io.LimitReader(file, r.maxDeck+1))
	if err != nil {
		return eris.Wrapf(domdeck.ErrExtraction, "parse deck: read upload: %v", err)
	}

	parsed, err := r.deckSvc.ParseDeck(req.Context(), name, data)
	if err != nil {
		return eris.Wrap(err, "handle parse deck")
	}
	middleware.IncrementDecksParsed()
	return writeJSON(w, http.StatusOK, parsed)
}

type questionsResponse struct {
	Sections  []questionnaire.Section  `json:"sections"`
	Questions []questionnaire.Question `json:"questions"`
}

// GET /api/questions?section=A
func (r *Router) handleQuestions(w http.ResponseWriter, req *http.Request) error {
	resp := questionsResponse{Sections: r.catalog.Sections()}

	key := strings.ToUpper(strings.TrimSpace(req.URL.Query().Get("section")))
	if key == "" {
		resp.Questions = r.catalog.Questions()
		return writeJSON(w, http.StatusOK, resp)
	}

	valid := make([]string, 0, len(resp.Sections))
	for _, s := range resp.Sections {
		if string(s.Key) == key {
			resp.Sections = []questionnaire.Section{s}
			resp.Questions = r.catalog.QuestionsFor(s.Key)
			return writeJSON(w, http.StatusOK, resp)
		}
		valid = append(valid, string(s.Key))
	}
	sort.Strings(valid)
	return badRequest{msg: fmt.Sprintf("unknown section %q (valid: %s)", key, strings.Join(valid, ", "))}
}
