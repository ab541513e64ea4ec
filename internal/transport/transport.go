// Package transport issues one HTTP call per API operation against the Rai
// query endpoint, attaching the request signature and classifying every
// failure into the SDK's typed error taxonomy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/raihq/rai-go/internal/monitoring"
	"github.com/raihq/rai-go/internal/signer"
	"github.com/raihq/rai-go/pkg/constants"
	"github.com/raihq/rai-go/pkg/errors"
	"github.com/raihq/rai-go/pkg/logger"
)

// Snapshot is the credential and endpoint state captured once at the start of
// a call. A reconfiguration that races with an in-flight call never affects
// the snapshot that call already holds.
type Snapshot struct {
	BaseURL   string
	KeyID     string
	PublicKey string
	Secret    string
}

// Client sends signed operations over HTTP.
type Client struct {
	httpClient *http.Client
	log        logger.Logger
	metrics    *monitoring.Metrics
}

// New creates a transport client. A nil httpClient falls back to a client
// with the default request timeout; a nil log falls back to the no-op logger.
// metrics may be nil to disable metric recording.
func New(httpClient *http.Client, log logger.Logger, metrics *monitoring.Metrics) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultRequestTimeout}
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Client{
		httpClient: httpClient,
		log:        log,
		metrics:    metrics,
	}
}

// BuildPayload assembles the canonical operation payload array: the operation
// tag followed by the positional arguments, with the trailing options object
// appended only when the caller supplied one. Presence or absence of the
// trailing element is meaningful to the server, so a nil options map must not
// become an explicit null placeholder.
func BuildPayload(op constants.Operation, args []interface{}, opts map[string]interface{}) []interface{} {
	payload := make([]interface{}, 0, len(args)+2)
	payload = append(payload, string(op))
	payload = append(payload, args...)
	if opts != nil {
		payload = append(payload, opts)
	}
	return payload
}

// successEnvelope is the JSON shape of a 2xx response.
type successEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Send issues one POST to {baseURL}/query for the given operation and returns
// the raw `data` field of the success envelope. Every failure is returned as
// exactly one classified error, except a malformed success body, which is an
// ordinary wrapped error because the server broke its own contract.
func (c *Client) Send(ctx context.Context, snap Snapshot, op constants.Operation, args []interface{}, opts map[string]interface{}) (json.RawMessage, error) {
	ctx, span := monitoring.StartSpan(ctx, string(op))

	data, status, err := c.send(ctx, snap, op, args, opts)
	monitoring.EndSpan(span, status, err)
	return data, err
}

func (c *Client) send(ctx context.Context, snap Snapshot, op constants.Operation, args []interface{}, opts map[string]interface{}) (json.RawMessage, int, error) {
	payload := BuildPayload(op, args, opts)

	// The signer serialized the payload; reusing its bytes as the request
	// body keeps signature and body byte-identical.
	token, body, err := signer.Sign(snap.KeyID, snap.PublicKey, snap.Secret, payload)
	if err != nil {
		c.record(op, err, time.Time{})
		return nil, constants.StatusNone, err
	}

	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, snap.BaseURL+constants.QueryPath, bytes.NewReader(body))
	if err != nil {
		sdkErr := errors.NewSDKError("failed to build request", err)
		c.record(op, sdkErr, time.Time{})
		return nil, constants.StatusNone, sdkErr
	}
	req.Header.Set("Content-Type", constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderSignature, token)
	req.Header.Set(constants.HeaderRequestID, requestID)

	c.log.Debug(ctx, "sending operation", logger.Fields{
		"operation":  string(op),
		"request_id": requestID,
		"url":        req.URL.String(),
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		netErr := errors.NewNetworkFault(err).WithContext("request_id", requestID)
		c.log.Error(ctx, "operation failed before a response was received", netErr, logger.Fields{
			"operation":  string(op),
			"request_id": requestID,
		})
		c.record(op, netErr, start)
		return nil, constants.StatusNone, netErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		netErr := errors.NewNetworkFault(err).WithContext("request_id", requestID)
		c.record(op, netErr, start)
		return nil, resp.StatusCode, netErr
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var envelope successEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			c.record(op, err, start)
			return nil, resp.StatusCode, fmt.Errorf("rai: decode success response: %w", err)
		}
		c.record(op, nil, start)
		c.log.Debug(ctx, "operation succeeded", logger.Fields{
			"operation":  string(op),
			"request_id": requestID,
			"status":     resp.StatusCode,
		})
		return envelope.Data, resp.StatusCode, nil
	}

	classified := c.classify(resp.StatusCode, raw).WithContext("request_id", requestID)
	c.log.Error(ctx, "operation rejected by server", classified, logger.Fields{
		"operation":  string(op),
		"request_id": requestID,
		"status":     resp.StatusCode,
	})
	c.record(op, classified, start)
	return nil, resp.StatusCode, classified
}

// classify decodes the error body and hands it to the error classifier. A
// body that is not valid JSON is replaced with a minimal ParseError
// diagnostic so classification still has a name and message to work with.
func (c *Client) classify(statusCode int, raw []byte) errors.RaiError {
	var body errors.ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		body = errors.ErrorBody{
			Error: &errors.ResponseError{
				Name:    "ParseError",
				Message: fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
			},
		}
	}
	return errors.Classify(statusCode, &body)
}

func (c *Client) record(op constants.Operation, err error, start time.Time) {
	var elapsed time.Duration
	if !start.IsZero() {
		elapsed = time.Since(start)
	}

	result := "success"
	if err != nil {
		result = "error"
		if re, ok := errors.AsRaiError(err); ok {
			result = string(re.Code())
		}
	}
	c.metrics.RecordRequest(string(op), result, elapsed)
}
