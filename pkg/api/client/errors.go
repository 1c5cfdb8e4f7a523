package client

import "fmt"

// Kind classifies client errors. One tagged type replaces the per-feature
// error hierarchies of older SDKs; callers branch on Kind (or errors.Is with
// the matcher variables below) to decide whether a whole-workflow retry makes
// sense.
type Kind string

const (
	// KindPayloadTooLarge: the image exceeds the upload cap. Raised before
	// any network call.
	KindPayloadTooLarge Kind = "payload_too_large"
	// KindNetwork: a non-2xx HTTP transport response.
	KindNetwork Kind = "network_error"
	// KindAPI: HTTP success but an application statusCode other than 2000.
	KindAPI Kind = "api_error"
	// KindUploadFailed: the binary PUT to the signed URL was rejected.
	KindUploadFailed Kind = "upload_failed"
	// KindProcessingFailed: the service reported a terminal "failed" status.
	// Never retried.
	KindProcessingFailed Kind = "processing_failed"
	// KindMaxRetries: polling exhausted its attempt budget without reaching
	// a terminal state.
	KindMaxRetries Kind = "max_retries_exceeded"
)

// Error is the error type returned by all Client operations.
type Error struct {
	Kind       Kind
	Message    string
	HTTPStatus int    // set for KindNetwork and KindUploadFailed
	OrderID    string // set for poll-stage errors
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.HTTPStatus != 0 {
		msg += fmt.Sprintf(" (http %d)", e.HTTPStatus)
	}
	if e.OrderID != "" {
		msg += fmt.Sprintf(" (order %s)", e.OrderID)
	}
	return msg
}

// Is matches on Kind so the exported matcher variables work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Matcher values for errors.Is. They carry no detail; compare against the
// errors returned by Client operations.
var (
	ErrPayloadTooLarge  = &Error{Kind: KindPayloadTooLarge}
	ErrNetwork          = &Error{Kind: KindNetwork}
	ErrAPI              = &Error{Kind: KindAPI}
	ErrUploadFailed     = &Error{Kind: KindUploadFailed}
	ErrProcessingFailed = &Error{Kind: KindProcessingFailed}
	ErrMaxRetries       = &Error{Kind: KindMaxRetries}
)
