package rai

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/raihq/rai-go/internal/monitoring"
	"github.com/raihq/rai-go/internal/transport"
	"github.com/raihq/rai-go/pkg/logger"
)

// settings is the atomically-swappable configuration value: credential and
// base URL always travel together, so a concurrent reader can never observe
// a half-old, half-new pair.
type settings struct {
	baseURL string
	cred    Credential
}

// Client is an instance of the Rai API client. All methods are safe for
// concurrent use; independent in-flight calls share nothing but the current
// settings value, which each call snapshots once at call start.
type Client struct {
	settings  atomic.Pointer[settings]
	transport *transport.Client
	log       logger.Logger
}

// Option customizes client construction.
type Option func(*options)

type options struct {
	httpClient *http.Client
	log        logger.Logger
	registerer prometheus.Registerer
}

// WithHTTPClient supplies the http.Client used for every request. This is
// also where callers control timeouts; the SDK has no retry or deadline
// policy of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger supplies the logger the SDK writes to. The default is a no-op
// logger.
func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics registers per-operation request metrics against the given
// prometheus registerer. Without this option no metrics are recorded.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// NewClient validates the configuration and constructs a client. Credential
// validation failures are fatal here, before any network call is attempted.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.NewNoopLogger()
	}

	var metrics *monitoring.Metrics
	if o.registerer != nil {
		metrics = monitoring.NewMetrics(o.registerer)
	}

	c := &Client{
		transport: transport.New(o.httpClient, o.log, metrics),
		log:       o.log,
	}
	c.settings.Store(&settings{baseURL: cfg.BaseURL, cred: cfg.Credential})
	return c, nil
}

// Reconfigure atomically replaces the credential and base URL. Calls already
// in flight keep the snapshot they captured at call start; the next call uses
// the new value for both signing and destination.
func (c *Client) Reconfigure(cred Credential, baseURL string) error {
	if err := cred.Validate(); err != nil {
		return err
	}
	if baseURL == "" {
		baseURL = c.settings.Load().baseURL
	}
	c.settings.Store(&settings{baseURL: baseURL, cred: cred})
	c.log.Info(context.Background(), "client reconfigured", logger.Fields{
		"base_url": baseURL,
		"key_id":   cred.KeyID,
	})
	return nil
}

// BaseURL returns the currently configured endpoint.
func (c *Client) BaseURL() string {
	return c.settings.Load().baseURL
}

// snapshot captures the configuration once for a single call.
func (c *Client) snapshot() transport.Snapshot {
	s := c.settings.Load()
	return transport.Snapshot{
		BaseURL:   s.baseURL,
		KeyID:     s.cred.KeyID,
		PublicKey: s.cred.PublicKey,
		Secret:    s.cred.Secret,
	}
}

// WatchConfigFile watches a config file and reconfigures the client whenever
// the file is rewritten, so rotated credentials take effect without
// reconstructing the client. The returned stop function releases the watch.
// A reload that fails to parse or validate is logged and skipped; the client
// keeps its current settings.
func (c *Client) WatchConfigFile(path string) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadConfigFile(path)
				if err != nil {
					c.log.Error(context.Background(), "config reload failed", err, logger.Fields{
						"path": path,
					})
					continue
				}
				if err := c.Reconfigure(cfg.Credential, cfg.BaseURL); err != nil {
					c.log.Error(context.Background(), "config reload rejected", err, logger.Fields{
						"path": path,
					})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.log.Warn(context.Background(), "config watch error", logger.Fields{
					"error": err.Error(),
					"path":  path,
				})
			}
		}
	}()

	return watcher.Close, nil
}
