// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nethttp

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gogama/xhr/transport"
)

const defaultChunkSize = 8 * 1024

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// Default is the transport used by a zero-value xhr.Client. It is a
// zero-value Transport, backed by http.DefaultClient.
var Default transport.Transport = &Transport{}

// A Transport performs request operations using the standard net/http
// client. Its zero value is a valid configuration.
//
// Each operation runs on its own goroutine: the HTTP request is sent,
// the response status is reported as a Headers notification, and the
// response body is read in chunks, each reported as a Data
// notification, so a consumer observes download progress rather than
// a single buffered body. Cancellation is implemented with the HTTP
// request's context, so a cancelled operation tears down its
// connection the same way an abandoned net/http request does.
//
// The HTTPDoer is responsible for all lower-level policy: redirects,
// cookies, proxies, TLS, and connection pooling. Consult its
// documentation to understand how those are handled.
type Transport struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer
	// Logger, if non-nil, receives debug-level log events describing
	// each operation's start and outcome, tagged with the operation's
	// unique id.
	//
	// If Logger is nil, nothing is logged.
	Logger *zerolog.Logger
	// ChunkSize is the response body read buffer size in bytes, and
	// therefore the maximum size of a single Data notification.
	//
	// If ChunkSize is zero or negative, a default of 8 KiB is used.
	ChunkSize int
}

// Begin starts an HTTP request operation. It returns an error only if
// the method and URL cannot be assembled into an HTTP request; any
// failure after that point is reported on the operation's
// notification channel.
func (t *Transport) Begin(method, url string, body []byte) (transport.Operation, error) {
	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader(body))
	if err != nil {
		cancel()
		return nil, err
	}

	op := &operation{
		id:     uuid.NewString(),
		ch:     make(chan transport.Notification),
		cancel: cancel,
	}
	if t.Logger != nil {
		t.Logger.Debug().Str("op", op.id).Str("method", method).
			Str("url", url).Msg("nethttp: operation started")
	}
	go t.run(op, req)
	return op, nil
}

func (t *Transport) run(op *operation, req *http.Request) {
	defer close(op.ch)

	doer := t.HTTPDoer
	if doer == nil {
		doer = http.DefaultClient
	}

	resp, err := doer.Do(req)
	if err != nil {
		op.ch <- t.terminalError(op, req, err)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	op.ch <- transport.Notification{Kind: transport.Headers, Status: resp.StatusCode}

	size := t.ChunkSize
	if size <= 0 {
		size = defaultChunkSize
	}
	buf := make([]byte, size)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			op.ch <- transport.Notification{Kind: transport.Data, Data: chunk}
		}
		if err == io.EOF {
			if t.Logger != nil {
				t.Logger.Debug().Str("op", op.id).Msg("nethttp: operation complete")
			}
			op.ch <- transport.Notification{Kind: transport.Complete}
			return
		}
		if err != nil {
			op.ch <- t.terminalError(op, req, err)
			return
		}
	}
}

// terminalError classifies an I/O error as an abort acknowledgement if
// the operation's context was cancelled, and as a failure otherwise.
func (t *Transport) terminalError(op *operation, req *http.Request, err error) transport.Notification {
	if req.Context().Err() != nil {
		if t.Logger != nil {
			t.Logger.Debug().Str("op", op.id).Msg("nethttp: operation cancelled")
		}
		return transport.Notification{Kind: transport.Aborted}
	}
	if t.Logger != nil {
		t.Logger.Debug().Str("op", op.id).Err(err).Msg("nethttp: operation failed")
	}
	return transport.Notification{Kind: transport.Failed, Err: err}
}

func bodyReader(body []byte) io.Reader {
	if body == nil {
		return nil
	}
	return bytes.NewReader(body)
}

type operation struct {
	id     string
	ch     chan transport.Notification
	cancel context.CancelFunc
}

func (o *operation) Notifications() <-chan transport.Notification {
	return o.ch
}

func (o *operation) Cancel() {
	o.cancel()
}
