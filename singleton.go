package rai

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrAlreadyInitialized is returned by Init when a default client exists.
	ErrAlreadyInitialized = errors.New("rai: default client already initialized")

	// ErrNotInitialized is returned when the default client is used before Init.
	ErrNotInitialized = errors.New("rai: default client not initialized, call Init first")
)

var (
	defaultMu     sync.Mutex
	defaultClient *Client
)

// Init constructs the process-wide default client. It fails if a default
// client already exists; two independently-registered instances can never
// coexist silently. Instance-based usage via NewClient remains the primary,
// recommended API — the default client is convenience sugar over it.
func Init(cfg Config, opts ...Option) (*Client, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient != nil {
		return nil, ErrAlreadyInitialized
	}

	c, err := NewClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	defaultClient = c
	return c, nil
}

// Default returns the process-wide default client.
func Default() (*Client, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient == nil {
		return nil, ErrNotInitialized
	}
	return defaultClient, nil
}

// Reset tears down the default client so Init can be called again. Intended
// for tests.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultClient = nil
}

// ================================================================================
// Static Facade
// ================================================================================

// Create inserts a document using the default client.
func Create(ctx context.Context, doc Document, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Create(ctx, doc, opts...)
}

// Find queries documents using the default client.
func Find(ctx context.Context, query Query, opts ...Options) ([]Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Find(ctx, query, opts...)
}

// FindOne queries a single document using the default client.
func FindOne(ctx context.Context, query Query, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.FindOne(ctx, query, opts...)
}

// UpdateDoc updates the first matching document using the default client.
func UpdateDoc(ctx context.Context, query Query, update Update, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Update(ctx, query, update, opts...)
}

// UpdateMany updates all matching documents using the default client.
func UpdateMany(ctx context.Context, query Query, update Update, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.UpdateMany(ctx, query, update, opts...)
}

// Delete soft-deletes the first matching document using the default client.
func Delete(ctx context.Context, query Query, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Delete(ctx, query, opts...)
}

// DeleteOne permanently removes the first matching document using the
// default client.
func DeleteOne(ctx context.Context, query Query, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.DeleteOne(ctx, query, opts...)
}

// DeleteMany permanently removes all matching documents using the default
// client.
func DeleteMany(ctx context.Context, query Query, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.DeleteMany(ctx, query, opts...)
}

// Aggregate runs a pipeline using the default client.
func Aggregate(ctx context.Context, pipeline Pipeline, opts ...Options) ([]Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Aggregate(ctx, pipeline, opts...)
}

// BulkWrite applies a batch of writes using the default client.
func BulkWrite(ctx context.Context, operations []BulkOperation, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.BulkWrite(ctx, operations, opts...)
}

// UpdateBatch applies paired updates using the default client.
func UpdateBatch(ctx context.Context, pairs []UpdatePair, opts ...Options) (Document, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.UpdateBatch(ctx, pairs, opts...)
}
