package domain

import "errors"

var (
	// ErrInvalidURL means a request URL could not be built from the
	// configured filters. Configuration error, never retried.
	ErrInvalidURL = errors.New("invalid request url")

	// ErrParsingFailed means an upstream response body could not be
	// decoded or did not validate against the expected shape.
	ErrParsingFailed = errors.New("parsing failed")

	// ErrElementHasNoData means the detail endpoint answered without a
	// data payload. The listing is gone upstream; not a crash.
	ErrElementHasNoData = errors.New("element has no data")

	// ErrStorageNotInitialized means a store operation ran before the
	// schema was ensured. Programmer error.
	ErrStorageNotInitialized = errors.New("storage not initialized")
)
