package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedItinerary marks an itinerary with no segments or with a segment
// missing its departure or arrival code. Only the offer carrying it is dropped.
var ErrMalformedItinerary = errors.New("malformed itinerary")

// AuthError means no bearer token could be obtained. The search aborts.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("flight search authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// SearchError means the offer request failed or its response lacked the offer list.
// Body holds the raw response, when one was received, for diagnosis.
type SearchError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *SearchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("flight search failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("flight search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
