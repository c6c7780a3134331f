package domain

import "errors"

// Sentinel errors for the trip search system. Handlers map these to HTTP
// status codes with errors.Is.
var (
	// ErrInvalidRequest indicates the request failed domain validation.
	// The wrapped message is safe to surface to the end user.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAllProvidersFailed indicates every required upstream data source
	// failed, so no candidates could be gathered at all.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrExtractorUnavailable indicates no parameter extraction
	// collaborator is configured for free-text resolution.
	ErrExtractorUnavailable = errors.New("parameter extractor unavailable")

	// ErrIncompleteParameters indicates the extraction collaborator could
	// not recover all required trip parameters from the utterance.
	ErrIncompleteParameters = errors.New("incomplete trip parameters")
)
