package playground

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	ErrTransport     = errors.New("playground: transport failure")
	ErrCodec         = errors.New("playground: codec failure")
	ErrServiceFault  = errors.New("playground: service fault")
	ErrMissingField  = errors.New("playground: missing required field")
	ErrInvalidOption = errors.New("playground: invalid option")
)

var errEmptyBody = errors.New("body must not be empty")

// TransportError is returned when the request could not be delivered or its
// response could not be read: connection refused, DNS or TLS failures,
// cancellation and broken bodies all end up here.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("playground: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// CodecError is returned when a request could not be encoded or a response
// body did not have the expected JSON shape.
type CodecError struct {
	// Op is either "encode" or "decode".
	Op  string
	Err error
}

func (e *CodecError) Error() string {
	if e.Op == "encode" {
		return fmt.Sprintf("playground: failed to encode request: %v", e.Err)
	}

	return "playground: failed to decode response: " + describeDecodeError(e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

func (e *CodecError) Is(target error) bool { return target == ErrCodec }

// ServiceFault is returned when the playground answered with a non-success
// status and a well formed error body.
type ServiceFault struct {
	Status  int
	Message string
}

func (e *ServiceFault) Error() string {
	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("playground: %d %s: %s", e.Status, text, e.Message)
	}

	return fmt.Sprintf("playground: %d: %s", e.Status, e.Message)
}

func (e *ServiceFault) Is(target error) bool { return target == ErrServiceFault }

// MissingFieldError is returned by a builder when a required field was never
// supplied.
type MissingFieldError struct {
	Field string
	// Message is the human readable validation message, e.g. "code is a
	// required field".
	Message string
}

func (e *MissingFieldError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("playground: missing required field %q", e.Field)
	}

	return "playground: " + e.Message
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// ParseError is returned when a string is not the wire form of any variant of
// an option enum.
type ParseError struct {
	Kind    string
	Value   string
	Allowed []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q (expected one of %s)", e.Kind, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalidOption }

// describeDecodeError renders a decode failure without echoing the response
// body. sonic's native decoder reports its own error types; the encoding/json
// types are what it returns on platforms without the native decoder.
func describeDecodeError(err error) string {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError

	if errors.Is(err, errEmptyBody) {
		return "response body must not be empty"
	}

	if description, ok := describeSonicError(err); ok {
		return description
	}

	switch {
	case errors.As(err, &syntaxError):
		return fmt.Sprintf("response body contains badly-formed JSON (at position %d)", syntaxError.Offset)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return "response body contains badly-formed JSON"

	case errors.As(err, &unmarshalTypeError):
		return fmt.Sprintf("response body contains an invalid value for the %q field (at position %d)",
			unmarshalTypeError.Field, unmarshalTypeError.Offset)

	default:
		return err.Error()
	}
}
