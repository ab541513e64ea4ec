package rai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raihq/rai-go/pkg/constants"
)

// Document is a single inventory record, passed through to the API as an
// opaque JSON object.
type Document map[string]interface{}

// Query is a MongoDB-style query object. The SDK does not parse or validate
// it; it is an opaque serializable payload.
type Query map[string]interface{}

// Update is a MongoDB-style update object, passed through verbatim.
type Update map[string]interface{}

// Pipeline is an aggregation pipeline: an ordered list of stage objects.
type Pipeline []map[string]interface{}

// BulkOperation is one entry of a bulk write, such as
// {"updateOne": {"filter": ..., "update": ...}}.
type BulkOperation map[string]interface{}

// UpdatePair is one (query, update) pair for UpdateBatch.
type UpdatePair struct {
	Filter Query
	Update Update
}

// Options is the trailing per-request options object. It is appended to the
// wire payload only when supplied.
type Options map[string]interface{}

// Create inserts a single document and returns the created record.
func (c *Client) Create(ctx context.Context, doc Document, opts ...Options) (Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpInsertOne, []interface{}{doc}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// Find returns every document matching the query.
func (c *Client) Find(ctx context.Context, query Query, opts ...Options) ([]Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpFind, []interface{}{query}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocumentList(raw)
}

// FindOne returns the first document matching the query, or nil if none
// matches. This is client-side sugar over Find with limit forced to 1; there
// is no distinct wire tag.
func (c *Client) FindOne(ctx context.Context, query Query, opts ...Options) (Document, error) {
	merged := make(Options, len(first(opts))+1)
	for k, v := range first(opts) {
		merged[k] = v
	}
	merged["limit"] = 1

	docs, err := c.Find(ctx, query, merged)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// Update updates the first document matching the query.
func (c *Client) Update(ctx context.Context, query Query, update Update, opts ...Options) (Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpFindOneAndUpdate, []interface{}{query, update}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// UpdateMany updates every document matching the query.
func (c *Client) UpdateMany(ctx context.Context, query Query, update Update, opts ...Options) (Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpUpdateMany, []interface{}{query, update}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// Delete soft-deletes the first document matching the query by marking it
// deleted through findOneAndUpdate. The server is never asked to remove the
// record; use DeleteOne or DeleteMany for true removal.
func (c *Client) Delete(ctx context.Context, query Query, opts ...Options) (Document, error) {
	update := Update{"deleted": map[string]interface{}{"status": true}}
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpFindOneAndUpdate, []interface{}{query, update}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// DeleteOne permanently removes the first document matching the query.
func (c *Client) DeleteOne(ctx context.Context, query Query, opts ...Options) (Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpDeleteOne, []interface{}{query}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// DeleteMany permanently removes every document matching the query.
func (c *Client) DeleteMany(ctx context.Context, query Query, opts ...Options) (Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpDeleteMany, []interface{}{query}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// Aggregate runs an aggregation pipeline and returns the resulting documents.
func (c *Client) Aggregate(ctx context.Context, pipeline Pipeline, opts ...Options) ([]Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpAggregate, []interface{}{pipeline}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocumentList(raw)
}

// BulkWrite applies a batch of independent write operations in one request.
func (c *Client) BulkWrite(ctx context.Context, operations []BulkOperation, opts ...Options) (Document, error) {
	raw, err := c.transport.Send(ctx, c.snapshot(), constants.OpBulkWrite, []interface{}{operations}, first(opts))
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// UpdateBatch updates many documents in one request by transforming each
// (query, update) pair into an updateOne bulk operation. There is no distinct
// wire tag; the request goes out as bulkWrite.
func (c *Client) UpdateBatch(ctx context.Context, pairs []UpdatePair, opts ...Options) (Document, error) {
	operations := make([]BulkOperation, len(pairs))
	for i, pair := range pairs {
		operations[i] = BulkOperation{
			"updateOne": map[string]interface{}{
				"filter": pair.Filter,
				"update": pair.Update,
			},
		}
	}
	return c.BulkWrite(ctx, operations, opts...)
}

// first returns the caller-supplied options object, or nil when none was
// given so that no trailing element is sent.
func first(opts []Options) Options {
	if len(opts) == 0 {
		return nil
	}
	return opts[0]
}

func decodeDocument(raw json.RawMessage) (Document, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("rai: decode result document: %w", err)
	}
	return doc, nil
}

func decodeDocumentList(raw json.RawMessage) ([]Document, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("rai: decode result documents: %w", err)
	}
	return docs, nil
}
