// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"github.com/rs/zerolog"

	"github.com/gogama/xhr/nethttp"
	"github.com/gogama/xhr/transport"
)

var emptyHandlers = HandlerGroup{}

// A Client creates Requests which share a transport, an event handler
// group, and a logger. Its zero value is a valid configuration.
//
// The zero value client uses nethttp.Default as the transport, no
// event handlers, and no logging.
//
// A Client holds no per-request state: it is a factory, each Request
// it creates is independent, and the Client is safe for concurrent use
// by multiple goroutines. Transports typically hold internal state
// (cached TCP connections) so Client instances should be reused
// instead of created as needed.
//
// A Client is higher-level than a transport.Transport. The transport
// is responsible for all details of performing the request over the
// network, while Client and Request build the observable lifecycle on
// top of the transport's notifications. Typically the nethttp
// transport, backed by the standard net/http client, will be used, but
// this is not required.
type Client struct {
	// Transport specifies the mechanics of performing requests over
	// the network.
	//
	// If Transport is nil, nethttp.Default is used.
	Transport transport.Transport
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during the lifecycle of a request
	// created by this client.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger, if non-nil, receives debug-level log events describing
	// state transitions, operation starts, aborts, and dropped
	// notifications for requests created by this client.
	//
	// If Logger is nil, nothing is logged.
	Logger *zerolog.Logger
}

// NewRequest returns a new Request in the Unsent state, bound to the
// client's transport, handlers, and logger. Call Open and Send on the
// returned request to start it.
func (c *Client) NewRequest() *Request {
	t := c.Transport
	if t == nil {
		t = nethttp.Default
	}
	h := c.Handlers
	if h == nil {
		h = &emptyHandlers
	}
	return &Request{
		transport: t,
		handlers:  h,
		logger:    c.Logger,
		done:      make(chan struct{}),
	}
}

// Get creates a request for a GET of the specified URL, opens it, and
// sends it, returning the in-flight request. Like Send, Get does not
// wait for the request to make progress.
func (c *Client) Get(url string) (*Request, error) {
	return Get(c, url)
}

// Post creates a request for a POST to the specified URL, opens it,
// and sends it with the given body, returning the in-flight request.
// Like Send, Post does not wait for the request to make progress.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by BodyBytes, namely: string; []byte; io.Reader;
// and io.ReadCloser.
func (c *Client) Post(url string, body interface{}) (*Request, error) {
	return Post(c, url, body)
}
