package download

import (
	"errors"
	"fmt"
)

// Kind classifies workflow failures
type Kind int

const (
	KindInput Kind = iota
	KindResolution
	KindFetch
	KindArtifactNotFound
	KindRelocate
	KindStore
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input error"
	case KindResolution:
		return "resolution error"
	case KindFetch:
		return "fetch error"
	case KindArtifactNotFound:
		return "artifact not found"
	case KindRelocate:
		return "relocate error"
	case KindStore:
		return "store error"
	default:
		return "unknown error"
	}
}

// Error is a classified workflow error. URL and VideoID are empty for
// batch-level input errors.
type Error struct {
	Kind    Kind
	URL     string
	VideoID string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	subject := e.URL
	if e.VideoID != "" {
		subject = e.VideoID
	}
	switch {
	case subject != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, subject, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case subject != "":
		return fmt.Sprintf("%s: %s", e.Kind, subject)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of any of the given kinds
func IsKind(err error, kinds ...Kind) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	for _, k := range kinds {
		if de.Kind == k {
			return true
		}
	}
	return false
}

func newError(kind Kind, url, videoID string, err error) *Error {
	return &Error{Kind: kind, URL: url, VideoID: videoID, Err: err}
}
