// Package playground is a client for the Rust Playground web service
// (https://play.rust-lang.org). It wraps the compile, execute, format and
// clippy endpoints with typed requests and responses.
//
//	client := playground.New()
//
//	req, err := playground.NewExecuteBuilder(`fn main() { println!("1"); }`).
//		Channel(playground.ChannelNightly).
//		Build()
//	if err != nil {
//		return err
//	}
//
//	resp, err := client.Execute(ctx, req)
//
// A Client is safe for concurrent use, every call is an independent round trip.
package playground

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the address of the public playground.
	DefaultBaseURL = "https://play.rust-lang.org"
	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "rust-playground-client"
)

const (
	compilePath = "/compile"
	executePath = "/execute"
	formatPath  = "/format"
	lintPath    = "/clippy"
)

// Client talks to a playground instance. It holds no state besides its
// transport and configuration and is never mutated after New.
type Client struct {
	http      Doer
	baseURL   string
	userAgent string
	logger    zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport, http.DefaultClient by default.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

// WithBaseURL points the client at another playground, e.g. a self hosted
// instance or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for per call debug events. The global
// zerolog logger is used otherwise.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the public playground unless configured otherwise.
func New(opts ...Option) *Client {
	c := &Client{
		http:      http.DefaultClient,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		logger:    log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Compile compiles the code to the requested target without running it.
func (c *Client) Compile(ctx context.Context, req CompileRequest) (CompileResponse, error) {
	return dispatch[CompileRequest, CompileResponse](ctx, c, compilePath, req)
}

// Execute builds and runs the code.
func (c *Client) Execute(ctx context.Context, req ExecuteRequest) (ExecuteResponse, error) {
	return dispatch[ExecuteRequest, ExecuteResponse](ctx, c, executePath, req)
}

// Format runs rustfmt over the code.
func (c *Client) Format(ctx context.Context, req FormatRequest) (FormatResponse, error) {
	return dispatch[FormatRequest, FormatResponse](ctx, c, formatPath, req)
}

// Lint runs clippy over the code.
func (c *Client) Lint(ctx context.Context, req LintRequest) (LintResponse, error) {
	return dispatch[LintRequest, LintResponse](ctx, c, lintPath, req)
}
