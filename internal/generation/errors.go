package generation

import "errors"

// Common errors returned by Gateway implementations.
var (
	// ErrInvalidConfig is returned when a gateway is constructed with
	// missing or invalid configuration (API key, model name).
	ErrInvalidConfig = errors.New("invalid gateway configuration")

	// ErrGatewayFailure is returned when the completion service call
	// fails: network errors, authentication failures, quota limits.
	ErrGatewayFailure = errors.New("completion service call failed")

	// ErrEmptyCompletion is returned when the completion service responds
	// without usable generated text.
	ErrEmptyCompletion = errors.New("empty completion from language model")
)
