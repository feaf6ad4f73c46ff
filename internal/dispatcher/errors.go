package dispatcher

import "errors"

// Dispatcher construction errors.
var (
	// ErrNoDocumentProvider indicates a missing document provider.
	ErrNoDocumentProvider = errors.New("dispatcher: document provider is required")

	// ErrNoDispatch indicates a missing host dispatch function.
	ErrNoDispatch = errors.New("dispatcher: host dispatch function is required")
)
