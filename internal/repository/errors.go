package repository

import "errors"

// ErrAIUnavailable marks recoverable upstream failures of the analysis
// backend (transport errors, provider 5xx, no usable model). Callers map it
// to the fixed fallback notice instead of failing the request.
var ErrAIUnavailable = errors.New("analysis backend unavailable")
