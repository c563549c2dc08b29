package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrServiceFailed wraps any failure of the model call itself.
var ErrServiceFailed = errors.New("ai service call failed")

// ErrParseMiss means the model replied but no JSON-shaped span was found.
var ErrParseMiss = errors.New("ai response contains no json object")

// ErrDecode means a JSON-shaped span was found but it is not valid JSON.
var ErrDecode = errors.New("ai response json could not be decoded")

// ErrSchemaViolation means the decoded JSON doesn't match the result contract.
var ErrSchemaViolation = errors.New("ai response violates result schema")
