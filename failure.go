package httpflow

import "fmt"

// FailureKind discriminates the closed failure taxonomy.
type FailureKind int

const (
	// FailureHTTP is a completed exchange whose status indicates
	// failure, or a transport-level error surfaced with a code and
	// message pair.
	FailureHTTP FailureKind = iota
	// FailureNoConversion is a structurally successful exchange whose
	// body the request's parser rejected.
	FailureNoConversion
)

// String returns the kind name.
func (k FailureKind) String() string {
	switch k {
	case FailureHTTP:
		return "http"
	case FailureNoConversion:
		return "no_conversion"
	default:
		return "unknown"
	}
}

// Failure is the closed set of reasons an exchange can fail. Construct
// one with HTTPFailure or NoConversion and switch on Kind to consume
// it.
type Failure struct {
	// Kind discriminates the variant.
	Kind FailureKind
	// StatusCode and StatusMessage describe the failure when Kind is
	// FailureHTTP. A zero StatusCode means a transport-level failure
	// with no numeric code.
	StatusCode    int
	StatusMessage string
	// RawBody is the unparsed response body when Kind is
	// FailureNoConversion.
	RawBody string
}

// HTTPFailure classifies an exchange that failed at the HTTP or
// transport layer.
func HTTPFailure(statusCode int, statusMessage string) Failure {
	return Failure{Kind: FailureHTTP, StatusCode: statusCode, StatusMessage: statusMessage}
}

// NoConversion classifies a successful exchange whose body could not
// be interpreted. It carries the raw body text for diagnosis.
func NoConversion(rawBody string) Failure {
	return Failure{Kind: FailureNoConversion, RawBody: rawBody}
}

// Error implements error so a Failure can be logged or wrapped
// directly. Send still delivers failures as values on the stream,
// never as returned errors.
func (f Failure) Error() string {
	switch f.Kind {
	case FailureNoConversion:
		return fmt.Sprintf("httpflow: response body not convertible: %q", f.RawBody)
	default:
		return fmt.Sprintf("httpflow: HTTP %d: %s", f.StatusCode, f.StatusMessage)
	}
}
