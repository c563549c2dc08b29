package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics stores application metrics
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	RequestsSuccess    uint64
	RequestsFailed     uint64

	AnalysesDemo         uint64
	AnalysesLive         uint64
	AnalysesParseMiss    uint64
	AnalysesDecodeError  uint64
	AnalysesSchemaError  uint64
	AnalysesServiceError uint64

	DecksParsed   uint64
	DecksRejected uint64
	StartTime     time.Time
}

var globalMetrics = &Metrics{
	StartTime: time.Now(),
}

// IncrementRequests increments total request counter
func IncrementRequests() {
	atomic.AddUint64(&globalMetrics.RequestsTotal, 1)
}

// IncrementInProgress increments in-progress request counter
func IncrementInProgress() {
	atomic.AddUint64(&globalMetrics.RequestsInProgress, 1)
}

// DecrementInProgress decrements in-progress request counter
func DecrementInProgress() {
	atomic.AddUint64(&globalMetrics.RequestsInProgress, ^uint64(0))
}

// IncrementSuccess increments successful request counter
func IncrementSuccess() {
	atomic.AddUint64(&globalMetrics.RequestsSuccess, 1)
}

// IncrementFailed increments failed request counter
func IncrementFailed() {
	atomic.AddUint64(&globalMetrics.RequestsFailed, 1)
}

// RecordAnalysis counts one finished analysis by interpreter outcome.
// Unknown outcomes are ignored.
func RecordAnalysis(outcome string) {
	var c *uint64
	switch outcome {
	case "demo":
		c = &globalMetrics.AnalysesDemo
	case "live":
		c = &globalMetrics.AnalysesLive
	case "parse_miss":
		c = &globalMetrics.AnalysesParseMiss
	case "decode_error":
		c = &globalMetrics.AnalysesDecodeError
	case "schema_error":
		c = &globalMetrics.AnalysesSchemaError
	case "service_error":
		c = &globalMetrics.AnalysesServiceError
	default:
		return
	}
	atomic.AddUint64(c, 1)
}

// IncrementDecksParsed counts a successfully parsed deck.
func IncrementDecksParsed() {
	atomic.AddUint64(&globalMetrics.DecksParsed, 1)
}

// IncrementDecksRejected counts a deck rejected or failed during parsing.
func IncrementDecksRejected() {
	atomic.AddUint64(&globalMetrics.DecksRejected, 1)
}

// GetMetrics returns current metrics
func GetMetrics() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]interface{}{
		"requests_total":       atomic.LoadUint64(&globalMetrics.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&globalMetrics.RequestsInProgress),
		"requests_success":     atomic.LoadUint64(&globalMetrics.RequestsSuccess),
		"requests_failed":      atomic.LoadUint64(&globalMetrics.RequestsFailed),
		"analyses": map[string]uint64{
			"demo":          atomic.LoadUint64(&globalMetrics.AnalysesDemo),
			"live":          atomic.LoadUint64(&globalMetrics.AnalysesLive),
			"parse_miss":    atomic.LoadUint64(&globalMetrics.AnalysesParseMiss),
			"decode_error":  atomic.LoadUint64(&globalMetrics.AnalysesDecodeError),
			"schema_error":  atomic.LoadUint64(&globalMetrics.AnalysesSchemaError),
			"service_error": atomic.LoadUint64(&globalMetrics.AnalysesServiceError),
		},
		"decks_parsed":   atomic.LoadUint64(&globalMetrics.DecksParsed),
		"decks_rejected": atomic.LoadUint64(&globalMetrics.DecksRejected),
		"uptime_seconds": time.Since(globalMetrics.StartTime).Seconds(),
		"memory": map[string]interface{}{
			"alloc_bytes":       m.Alloc,
			"total_alloc_bytes": m.TotalAlloc,
			"sys_bytes":         m.Sys,
			"num_gc":            m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}
}

// MetricsMiddleware tracks request metrics
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		IncrementRequests()
		IncrementInProgress()
		defer DecrementInProgress()

		// Wrap response writer to capture status
		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		// Track success/failure based on status code
		if wrapped.statusCode >= 200 && wrapped.statusCode < 400 {
			IncrementSuccess()
		} else {
			IncrementFailed()
		}
	})
}

// MetricsHandler returns metrics as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetMetrics()) //nolint:errcheck
}
