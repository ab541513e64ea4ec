// Package constants defines system-wide constants for the Rai Go SDK.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ================================================================================
// Operation Tag Constants
// ================================================================================

// Operation represents the wire-level tag of an API operation. The tag is the
// first element of the request payload array.
type Operation string

const (
	// OpInsertOne inserts a single document.
	OpInsertOne Operation = "insertOne"

	// OpFind returns all documents matching a query.
	OpFind Operation = "find"

	// OpFindOneAndUpdate updates the first document matching a query.
	// Soft deletes are expressed through this tag as well.
	OpFindOneAndUpdate Operation = "findOneAndUpdate"

	// OpUpdateMany updates every document matching a query.
	OpUpdateMany Operation = "updateMany"

	// OpDeleteOne permanently removes the first document matching a query.
	OpDeleteOne Operation = "deleteOne"

	// OpDeleteMany permanently removes every document matching a query.
	OpDeleteMany Operation = "deleteMany"

	// OpBulkWrite applies a batch of independent write operations in one request.
	OpBulkWrite Operation = "bulkWrite"

	// OpAggregate runs an aggregation pipeline.
	OpAggregate Operation = "aggregate"
)

// ================================================================================
// Wire Protocol Constants
// ================================================================================

const (
	// HeaderSignature carries the request signature token.
	HeaderSignature = "Rai-Signature"

	// HeaderRequestID carries the client-generated request correlation ID.
	HeaderRequestID = "X-Request-Id"

	// ContentTypeJSON is the content type of every request body.
	ContentTypeJSON = "application/json"

	// QueryPath is the single endpoint path all operations are posted to.
	QueryPath = "/query"

	// DefaultBaseURL is the production API endpoint used when no base URL
	// is configured.
	DefaultBaseURL = "https://api.raihq.com/v1"

	// DefaultRequestTimeout bounds a single operation when the caller does
	// not supply a context deadline.
	DefaultRequestTimeout = 30 * time.Second
)

// ================================================================================
// Credential Constants
// ================================================================================

const (
	// KeyIDLength is the exact length of a Rai API key ID.
	KeyIDLength = 24

	// PublicKeyLength is the exact length of a Rai API public key.
	PublicKeyLength = 32

	// SecretLength is the exact length of a Rai API secret.
	SecretLength = 64
)

// ================================================================================
// Error Code Constants
// ================================================================================

// ErrorCode identifies the category of a classified SDK error.
type ErrorCode string

const (
	// ErrCodeValidation indicates the server rejected the request with
	// structured per-field constraint violations.
	ErrCodeValidation ErrorCode = "validation_error"

	// ErrCodeAuthentication indicates the request was rejected with 401 or 403.
	ErrCodeAuthentication ErrorCode = "authentication_error"

	// ErrCodeNetwork indicates a server-side failure (5xx) or a
	// transport-level fault that produced no HTTP response at all.
	ErrCodeNetwork ErrorCode = "network_error"

	// ErrCodeAPI indicates any other non-success HTTP response.
	ErrCodeAPI ErrorCode = "api_error"

	// ErrCodeSDK indicates an unexpected failure outside the HTTP response
	// lifecycle, such as request construction or signing.
	ErrCodeSDK ErrorCode = "sdk_error"
)

// StatusNone is the status code sentinel for failures that never produced
// an HTTP response.
const StatusNone = 0

// ================================================================================
// Logging Constants
// ================================================================================

// LogLevel represents the verbosity of the SDK logger.
type LogLevel string

const (
	// LogLevelDebug enables per-request wire-level logging.
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn logs only degraded behavior.
	LogLevelWarn LogLevel = "warn"

	// LogLevelError logs only failures.
	LogLevelError LogLevel = "error"
)
