// Package errors defines the typed error taxonomy of the Rai Go SDK.
// Every failure surfaced by the SDK is one of a fixed set of error kinds that
// callers can branch on programmatically, each carrying the HTTP status code,
// the classification timestamp, optional free-form context, and the raw error
// body when one was received.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/raihq/rai-go/pkg/constants"
)

// ================================================================================
// Wire Error Body
// ================================================================================

// ErrorBody is the JSON shape of a non-success response from the Rai API.
type ErrorBody struct {
	Success *bool          `json:"success,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// ResponseError is the error envelope inside a non-success response body.
type ResponseError struct {
	Name    string      `json:"name,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []Violation `json:"errors,omitempty"`
}

// Violation is one per-property constraint failure. Violations for nested
// objects appear as children of their parent property.
type Violation struct {
	Property    string      `json:"property"`
	Constraints []string    `json:"constraints"`
	Children    []Violation `json:"children,omitempty"`
}

// ================================================================================
// Base Error Interface
// ================================================================================

// RaiError is the common interface of every classified SDK error.
type RaiError interface {
	error

	// Code returns the error category code.
	Code() constants.ErrorCode

	// StatusCode returns the HTTP status code, or constants.StatusNone for
	// failures that never produced an HTTP response.
	StatusCode() int

	// Timestamp returns the instant the error was classified. It serializes
	// to ISO-8601 via time.Time's RFC 3339 formatting.
	Timestamp() time.Time

	// Context returns free-form diagnostic context.
	Context() map[string]interface{}

	// OriginalError returns the raw response body the error was classified
	// from, or nil for failures without one.
	OriginalError() *ErrorBody

	// WithContext attaches a diagnostic key-value pair.
	WithContext(key string, value interface{}) RaiError
}

// ================================================================================
// Base Error Implementation
// ================================================================================

// baseError is the shared implementation embedded by every concrete error kind.
type baseError struct {
	code       constants.ErrorCode
	statusCode int
	message    string
	timestamp  time.Time
	context    map[string]interface{}
	original   *ErrorBody
	cause      error
}

func newBase(code constants.ErrorCode, statusCode int, message string, original *ErrorBody) baseError {
	return baseError{
		code:       code,
		statusCode: statusCode,
		message:    message,
		timestamp:  time.Now().UTC(),
		context:    make(map[string]interface{}),
		original:   original,
	}
}

// Error implements the error interface.
func (e *baseError) Error() string {
	return e.message
}

// Code returns the error category code.
func (e *baseError) Code() constants.ErrorCode {
	return e.code
}

// StatusCode returns the HTTP status code of the failure.
func (e *baseError) StatusCode() int {
	return e.statusCode
}

// Timestamp returns the classification time.
func (e *baseError) Timestamp() time.Time {
	return e.timestamp
}

// Context returns the diagnostic context map.
func (e *baseError) Context() map[string]interface{} {
	return e.context
}

// OriginalError returns the raw error body, if any.
func (e *baseError) OriginalError() *ErrorBody {
	return e.original
}

// Unwrap returns the underlying cause for error chain support.
func (e *baseError) Unwrap() error {
	return e.cause
}

// ================================================================================
// Concrete Error Kinds
// ================================================================================

// ValidationError is returned for responses carrying structured per-field
// constraint violations.
type ValidationError struct {
	baseError

	// Violations is the full violation tree as received, including nested
	// children for nested objects.
	Violations []Violation
}

// WithContext attaches a diagnostic key-value pair.
func (e *ValidationError) WithContext(key string, value interface{}) RaiError {
	e.context[key] = value
	return e
}

// Flatten returns every constraint message across the whole violation tree
// in depth-first order.
func (e *ValidationError) Flatten() []string {
	var messages []string
	flattenViolations(e.Violations, &messages)
	return messages
}

// ForProperty returns every violation whose property matches the given path,
// at any nesting depth.
func (e *ValidationError) ForProperty(property string) []Violation {
	var matches []Violation
	filterViolations(e.Violations, property, &matches)
	return matches
}

func flattenViolations(violations []Violation, out *[]string) {
	for _, v := range violations {
		*out = append(*out, v.Constraints...)
		flattenViolations(v.Children, out)
	}
}

func filterViolations(violations []Violation, property string, out *[]Violation) {
	for _, v := range violations {
		if v.Property == property {
			*out = append(*out, v)
		}
		filterViolations(v.Children, property, out)
	}
}

// AuthenticationError is returned for 401 and 403 responses.
type AuthenticationError struct {
	baseError
}

// WithContext attaches a diagnostic key-value pair.
func (e *AuthenticationError) WithContext(key string, value interface{}) RaiError {
	e.context[key] = value
	return e
}

// NetworkError is returned for 5xx responses and for transport-level faults
// that never produced an HTTP response.
type NetworkError struct {
	baseError
}

// WithContext attaches a diagnostic key-value pair.
func (e *NetworkError) WithContext(key string, value interface{}) RaiError {
	e.context[key] = value
	return e
}

// APIError is returned for any other non-success HTTP response.
type APIError struct {
	baseError
}

// WithContext attaches a diagnostic key-value pair.
func (e *APIError) WithContext(key string, value interface{}) RaiError {
	e.context[key] = value
	return e
}

// SDKError is reserved for unexpected failures outside the HTTP response
// lifecycle, such as request construction or signing.
type SDKError struct {
	baseError
}

// WithContext attaches a diagnostic key-value pair.
func (e *SDKError) WithContext(key string, value interface{}) RaiError {
	e.context[key] = value
	return e
}

// ================================================================================
// Classifier
// ================================================================================

// Classify turns a non-success HTTP response into a typed error.
// Decision order, first match wins:
//
//  1. body.error.errors present as a list -> ValidationError
//  2. status 401 or 403                   -> AuthenticationError
//  3. status >= 500                       -> NetworkError
//  4. anything else                       -> APIError
//
// Classify is a pure function of its inputs apart from capturing the
// classification timestamp.
func Classify(statusCode int, body *ErrorBody) RaiError {
	message := ""
	if body != nil && body.Error != nil {
		message = body.Error.Message
	}

	if body != nil && body.Error != nil && body.Error.Errors != nil {
		if message == "" {
			var all []string
			flattenViolations(body.Error.Errors, &all)
			message = strings.Join(all, "; ")
		}
		return &ValidationError{
			baseError:  newBase(constants.ErrCodeValidation, statusCode, message, body),
			Violations: body.Error.Errors,
		}
	}

	switch {
	case statusCode == 401 || statusCode == 403:
		if message == "" {
			message = "Authentication failed"
		}
		return &AuthenticationError{newBase(constants.ErrCodeAuthentication, statusCode, message, body)}

	case statusCode >= 500:
		if message == "" {
			message = "Server error occurred"
		}
		return &NetworkError{newBase(constants.ErrCodeNetwork, statusCode, message, body)}

	default:
		if message == "" {
			message = fmt.Sprintf("API request failed with status %d", statusCode)
		}
		return &APIError{newBase(constants.ErrCodeAPI, statusCode, message, body)}
	}
}

// ================================================================================
// Non-Response Error Constructors
// ================================================================================

// NewNetworkFault creates the NetworkError for a transport-level fault where
// no HTTP response was received at all. The low-level cause is carried in the
// error context, not in the message.
func NewNetworkFault(cause error) *NetworkError {
	e := &NetworkError{newBase(
		constants.ErrCodeNetwork,
		constants.StatusNone,
		"Network request failed - check your internet connection and API endpoint",
		nil,
	)}
	if cause != nil {
		e.context["cause"] = cause.Error()
		e.cause = cause
	}
	return e
}

// NewSDKError wraps an unexpected failure arising outside the HTTP response
// lifecycle.
func NewSDKError(message string, cause error) *SDKError {
	e := &SDKError{newBase(constants.ErrCodeSDK, constants.StatusNone, message, nil)}
	if cause != nil {
		e.context["cause"] = cause.Error()
		e.cause = cause
	}
	return e
}

// ================================================================================
// Error Validation Utilities
// ================================================================================

// IsRaiError checks if an error is any classified SDK error.
func IsRaiError(err error) bool {
	var re RaiError
	return stderrors.As(err, &re)
}

// AsRaiError attempts to extract a RaiError from an error chain.
func AsRaiError(err error) (RaiError, bool) {
	var re RaiError
	ok := stderrors.As(err, &re)
	return re, ok
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError
	return stderrors.As(err, &e)
}

// IsAuthenticationError checks if an error is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var e *AuthenticationError
	return stderrors.As(err, &e)
}

// IsNetworkError checks if an error is a NetworkError.
func IsNetworkError(err error) bool {
	var e *NetworkError
	return stderrors.As(err, &e)
}

// IsAPIError checks if an error is an APIError.
func IsAPIError(err error) bool {
	var e *APIError
	return stderrors.As(err, &e)
}

// IsSDKError checks if an error is an SDKError.
func IsSDKError(err error) bool {
	var e *SDKError
	return stderrors.As(err, &e)
}
