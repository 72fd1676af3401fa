// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transporttest provides an in-memory transport whose
notifications are emitted by hand, for testing request lifecycle
behavior without a network.

A test begins a request against a transporttest.Transport and then
drives the operation explicitly:

	tr := transporttest.New()
	client := &xhr.Client{Transport: tr}
	r, _ := client.Get("http://test/a")
	op := tr.Op(0)
	op.SendHeaders(200)
	op.SendData([]byte("hi"))
	op.Complete()
	<-r.Done()
*/
package transporttest

import (
	"sync"

	"github.com/gogama/xhr/transport"
)

// A Transport is an in-memory transport.Transport that records every
// operation begun on it and lets the test script each operation's
// notifications. It is safe for concurrent use by multiple
// goroutines.
type Transport struct {
	mu       sync.Mutex
	ops      []*Operation
	beginErr error
}

// New returns a new scripted transport with no operations.
func New() *Transport {
	return &Transport{}
}

// FailBegin makes every subsequent Begin call fail with err without
// recording an operation. Pass nil to restore normal behavior.
func (t *Transport) FailBegin(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.beginErr = err
}

// Begin records and returns a new scripted operation. The operation
// emits no notifications until the test sends them.
func (t *Transport) Begin(method, url string, body []byte) (transport.Operation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.beginErr != nil {
		return nil, t.beginErr
	}
	op := &Operation{
		Method: method,
		URL:    url,
		Body:   body,
		ch:     make(chan transport.Notification, 16),
	}
	t.ops = append(t.ops, op)
	return op, nil
}

// Ops returns the operations begun so far, in order.
func (t *Transport) Ops() []*Operation {
	t.mu.Lock()
	defer t.mu.Unlock()
	ops := make([]*Operation, len(t.ops))
	copy(ops, t.ops)
	return ops
}

// Op returns the i-th operation begun on the transport, panicking if
// no such operation exists.
func (t *Transport) Op(i int) *Operation {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.ops) {
		panic("transporttest: no such operation")
	}
	return t.ops[i]
}

// An Operation is a scripted in-flight request. The test drives it by
// calling SendHeaders, SendData, Complete, and Fail; the consumer sees
// the resulting notifications in the order they were sent.
//
// The notification channel is buffered, so the Send methods do not
// wait for the consumer to apply a notification. A test that needs to
// observe an intermediate state should wait for it rather than assert
// immediately after sending.
type Operation struct {
	// Method, URL, and Body record the arguments passed to Begin.
	Method string
	URL    string
	Body   []byte

	ch        chan transport.Notification
	mu        sync.Mutex
	closed    bool
	cancelled bool
}

// Notifications returns the operation's notification channel.
func (o *Operation) Notifications() <-chan transport.Notification {
	return o.ch
}

// Cancel marks the operation cancelled and, like a real transport
// acknowledging cancellation, emits a terminal Aborted notification
// and closes the notification channel. Cancel is idempotent.
func (o *Operation) Cancel() {
	o.send(transport.Notification{Kind: transport.Aborted}, true)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancelled = true
}

// Cancelled reports whether Cancel has been called on the operation.
func (o *Operation) Cancelled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cancelled
}

// SendHeaders emits a Headers notification carrying the given status
// code.
func (o *Operation) SendHeaders(status int) {
	o.send(transport.Notification{Kind: transport.Headers, Status: status}, false)
}

// SendData emits a Data notification carrying the given chunk, which
// may be empty.
func (o *Operation) SendData(chunk []byte) {
	o.send(transport.Notification{Kind: transport.Data, Data: chunk}, false)
}

// Complete emits the terminal Complete notification and closes the
// notification channel.
func (o *Operation) Complete() {
	o.send(transport.Notification{Kind: transport.Complete}, true)
}

// Fail emits the terminal Failed notification carrying reason and
// closes the notification channel.
func (o *Operation) Fail(reason error) {
	o.send(transport.Notification{Kind: transport.Failed, Err: reason}, true)
}

// send emits n unless the channel is already closed, closing it
// afterward if terminal is true. Sends on a closed operation are
// ignored so that tests can script notifications racing a
// cancellation.
func (o *Operation) send(n transport.Notification, terminal bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.ch <- n
	if terminal {
		close(o.ch)
		o.closed = true
	}
}
