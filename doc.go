// Package rai is the Go client SDK for the Rai inventory-tracking API.
//
// Every operation is one signed POST to the service's single query endpoint.
// The request body is the canonical payload array [tag, ...args], and the
// Rai-Signature header carries a time-bound HMAC token computed over the
// exact serialized body, so the service can verify integrity and freshness.
//
// # Usage
//
//	cfg, err := rai.LoadConfig()
//	if err != nil { ... }
//	client, err := rai.NewClient(*cfg)
//	if err != nil { ... }
//
//	items, err := client.Find(ctx, rai.Query{"sku": "ITEM-001"})
//
// Queries, updates, and pipelines use the Mongo-style vocabulary of the API
// and are passed through as opaque payloads; the SDK never interprets them.
//
// # Errors
//
// Every failure surfaces as exactly one typed error from
// github.com/raihq/rai-go/pkg/errors. Callers branch with the predicate
// helpers:
//
//	if errors.IsValidationError(err) { ... }
//	if errors.IsAuthenticationError(err) { ... }
//	if errors.IsNetworkError(err) { ... }
//
// Nothing is retried or swallowed internally.
//
// # Default client
//
// Init registers a process-wide default client that the package-level
// operation functions forward to. It can be registered once per process and
// reset explicitly; constructing clients with NewClient is the primary API.
package rai
