package apiclient

import "fmt"

// DefaultErrorMessage is used when a failed response carries no "error" field.
const DefaultErrorMessage = "Something went wrong"

// RequestError is the only failure the client returns: the call did not
// produce a 2xx response. Message is safe to show to users.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int // zero when no response arrived
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return DefaultErrorMessage
}

func (e *RequestError) Unwrap() error { return e.Err }

// Detail is the log-friendly form including method, path and status.
func (e *RequestError) Detail() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s status=%d: %s (%v)", e.Method, e.Path, e.StatusCode, e.Error(), e.Err)
	}
	return fmt.Sprintf("%s %s status=%d: %s", e.Method, e.Path, e.StatusCode, e.Error())
}
