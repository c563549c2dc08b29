package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"os/exec"
	"time"

	"github.com/rotisserie/eris"

	"github.com/bryanwahyu/seedcheck/internal/domain/questionnaire"
	"github.com/bryanwahyu/seedcheck/internal/domain/report"
)

// HealthChecker defines interface for health checking
type HealthChecker interface {
	Check(ctx context.Context) error
}

// CatalogHealthChecker checks the question catalog loaded with all sections.
type CatalogHealthChecker struct {
	Catalog *questionnaire.Catalog
}

func (c *CatalogHealthChecker) Check(ctx context.Context) error {
	if c.Catalog == nil {
		return eris.New("catalog not loaded")
	}
	if n := len(c.Catalog.Sections()); n != 5 {
		return eris.Errorf("catalog has %d sections, want 5", n)
	}
	if len(c.Catalog.Questions()) == 0 {
		return eris.New("catalog has no questions")
	}
	return nil
}

// RubricHealthChecker checks the score bands cover 0-100 without gaps.
type RubricHealthChecker struct{}

func (RubricHealthChecker) Check(ctx context.Context) error {
	next := 0
	bands := report.Bands()
	for i := len(bands) - 1; i >= 0; i-- {
		if bands[i].Min != next {
			return eris.Errorf("score band %q starts at %d, want %d", bands[i].Label, bands[i].Min, next)
		}
		next = bands[i].Max + 1
	}
	if next != report.MaxOverallScore+1 {
		return eris.Errorf("score bands end at %d, want %d", next-1, report.MaxOverallScore)
	}
	return nil
}

// ExecutableHealthChecker checks an external tool is on PATH.
type ExecutableHealthChecker struct {
	Path string
}

func (e *ExecutableHealthChecker) Check(ctx context.Context) error {
	if _, err := exec.LookPath(e.Path); err != nil {
		return eris.Wrapf(err, "%s not found", e.Path)
	}
	return nil
}

// HealthStatus represents the health status
type HealthStatus struct {
	Status    string                 `json:"status"`
	Mode      string                 `json:"mode,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus represents individual check status
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler creates a readiness handler running every checker. mode is
// reported as-is ("live" or "demo").
func HealthHandler(checkers map[string]HealthChecker, mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := HealthStatus{
			Status:    "healthy",
			Mode:      mode,
			Timestamp: time.Now(),
			Checks:    make(map[string]CheckStatus),
		}

		// Run all health checks
		for name, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				health.Status = "unhealthy"
				health.Checks[name] = CheckStatus{
					Status:  "unhealthy",
					Message: err.Error(),
				}
			} else {
				health.Checks[name] = CheckStatus{
					Status: "healthy",
				}
			}
		}

		// Set status code based on health
		statusCode := http.StatusOK
		if health.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(health) //nolint:errcheck
	}
}

// LivenessHandler creates a liveness check handler (simplest check)
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok")) //nolint:errcheck
}
