// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gogama/xhr/transport"
)

// errTransportAborted is recorded as the failure reason when a
// transport reports an Aborted notification for an operation the
// request did not cancel.
var errTransportAborted = errors.New("xhr: operation aborted by transport")

// A Request represents a single asynchronous request and its
// observable lifecycle. Create a Request with Client.NewRequest, then
// call Open to fix the method and URL, and Send to start the
// underlying transport operation.
//
// A Request gives the caller a synchronous, queryable view of an
// operation it does not control: ReadyState, Status, and the response
// accessors can be polled at any time from any goroutine and always
// observe a consistent snapshot. To be notified of progress instead of
// polling, install handlers in the Client that created the request, or
// wait on the Done channel.
//
// Neither Open nor Send nor Abort blocks. The transport performs its
// work on its own goroutines and the request applies the resulting
// notifications strictly in arrival order, one at a time. Distinct
// Request instances share no mutable state and may progress fully in
// parallel.
//
// Once a request reaches the Done state, whether by completion,
// failure, or abort, it never changes again. A Request cannot be
// reused; create a new one for each operation.
type Request struct {
	transport transport.Transport
	handlers  *HandlerGroup
	logger    *zerolog.Logger

	mu         sync.Mutex
	state      ReadyState
	method     string
	url        string
	sent       bool
	status     int
	hasStatus  bool
	body       []byte
	hasBody    bool
	failure    error
	wasAborted bool
	op         transport.Operation
	done       chan struct{}

	abort abortController
}

// Open fixes the request method and URL and moves the request from
// Unsent to Opened.
//
// The method must be a valid HTTP token (per RFC 7230) and the URL
// must be non-empty; deeper URL validation is left to the transport.
// Open returns ErrAlreadyOpened if the request has already left the
// Unsent state.
func (r *Request) Open(method, url string) error {
	if !validMethod(method) {
		return fmt.Errorf("xhr: invalid method %q", method)
	}
	if url == "" {
		return errors.New("xhr: empty url")
	}

	r.mu.Lock()
	if r.state != Unsent {
		r.mu.Unlock()
		return ErrAlreadyOpened
	}
	r.setState(Opened)
	r.method = method
	r.url = url
	r.mu.Unlock()

	r.handlers.run(ReadyStateChange, r)
	return nil
}

// Send begins the transport operation for the request. It returns as
// soon as the operation has been started; progress is observed through
// ReadyState, the response accessors, installed handlers, and the Done
// channel.
//
// The body parameter may be nil (no body), or may be any of the types
// supported by BodyBytes, namely: string; []byte; io.Reader; and
// io.ReadCloser.
//
// Send returns ErrNotOpened unless the request is in the Opened state,
// and ErrAlreadySent if Send has already been called. If the transport
// rejects the operation outright, Send moves the request to Done with
// the transport's error recorded, and returns that error.
func (r *Request) Send(body interface{}) error {
	b, err := BodyBytes(body)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.sent {
		r.mu.Unlock()
		return ErrAlreadySent
	}
	if r.state != Opened {
		r.mu.Unlock()
		return ErrNotOpened
	}
	r.sent = true
	method, url := r.method, r.url
	r.mu.Unlock()

	op, err := r.transport.Begin(method, url, b)
	if err != nil {
		r.fail(err)
		return err
	}

	r.mu.Lock()
	if r.state == Done {
		// Abort won the race with Begin, so the operation was never
		// registered on the request. Cancel it and drain its channel
		// so the transport can finish.
		r.mu.Unlock()
		op.Cancel()
		go drain(op)
		return nil
	}
	r.op = op
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug().Str("method", method).Str("url", url).
			Msg("xhr: operation started")
	}
	go r.notifyLoop(op)
	return nil
}

// Abort cancels the request, forcing it directly to the Done state. If
// the request is already Done, Abort does nothing; otherwise the first
// call wins and subsequent calls have no further effect.
//
// From the caller's perspective the request is terminal as soon as
// Abort returns: ReadyState reports Done, and no transport
// notification, including ones already in flight, will mutate the
// request again. The transport's own teardown may complete
// asynchronously after Abort returns.
//
// If the response headers had not yet arrived, Status reports the
// sentinel value 0 after Abort. If they had, the already-observed
// status is preserved.
func (r *Request) Abort() {
	var fired bool
	r.abort.request(func() {
		r.mu.Lock()
		if r.state == Done {
			r.mu.Unlock()
			return
		}
		if !r.hasStatus {
			r.status = 0
			r.hasStatus = true
		}
		r.wasAborted = true
		r.state = Done
		op := r.op
		url := r.url
		r.finish()
		r.mu.Unlock()

		if op != nil {
			op.Cancel()
		}
		if r.logger != nil {
			r.logger.Debug().Str("url", url).Msg("xhr: request aborted")
		}
		fired = true
	})

	if fired {
		r.handlers.run(ReadyStateChange, r)
		r.handlers.run(Aborted, r)
	}
}

// Close releases the request's underlying transport operation,
// aborting the request first if it has not yet reached Done. It
// implements io.Closer and always returns nil.
//
// Closing a request that completed normally does not mark it aborted.
func (r *Request) Close() error {
	r.mu.Lock()
	terminal := r.state == Done
	r.mu.Unlock()
	if !terminal {
		r.Abort()
	}
	return nil
}

// ReadyState returns the request's current lifecycle state. It is a
// pure read with no side effects and may be called at any time.
func (r *Request) ReadyState() ReadyState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Status returns the response status code reported by the transport.
//
// The second return value is false before the response headers arrive.
// After an abort that happened before the headers arrived, Status
// returns the sentinel value 0 with a true second return value.
func (r *Request) Status() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status, r.hasStatus
}

// ResponseBytes returns a copy of the response body accumulated so
// far.
//
// The second return value is false until the first body chunk has been
// applied, which distinguishes "no body yet" from an empty body. While
// the request is Loading the returned slice holds the partial body; at
// Done it holds the complete body.
func (r *Request) ResponseBytes() ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasBody {
		return nil, false
	}
	b := make([]byte, len(r.body))
	copy(b, r.body)
	return b, true
}

// ResponseText returns the response body accumulated so far as a
// string. The second return value is false until the first body chunk
// has been applied, which distinguishes "no body yet" from an empty
// body.
func (r *Request) ResponseText() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasBody {
		return "", false
	}
	return string(r.body), true
}

// Err returns the terminal failure reported by the transport, or nil
// if the request has not failed. A request that completed normally or
// was aborted by the caller has a nil Err.
func (r *Request) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure
}

// Aborted reports whether Abort moved the request to Done.
func (r *Request) Aborted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wasAborted
}

// Method returns the request method fixed by Open, or the empty string
// before Open.
func (r *Request) Method() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.method
}

// URL returns the request URL fixed by Open, or the empty string
// before Open.
func (r *Request) URL() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.url
}

// Done returns a channel that is closed when the request reaches the
// Done state, however it is reached. It is provided so callers can
// select on completion instead of polling ReadyState.
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// setState advances the lifecycle state. The caller must hold mu. A
// transition the rules do not allow indicates a defect in this package
// or in the transport adapter, so setState panics rather than
// returning an error.
func (r *Request) setState(to ReadyState) {
	if !CanTransition(r.state, to) {
		panic(&InvalidTransitionError{From: r.state, To: to})
	}
	if r.logger != nil {
		r.logger.Debug().Stringer("from", r.state).Stringer("to", to).
			Str("url", r.url).Msg("xhr: ready state change")
	}
	r.state = to
}

// finish releases the transport operation and closes the done channel.
// The caller must hold mu and must have just set the state to Done.
func (r *Request) finish() {
	r.op = nil
	close(r.done)
}

// fail moves the request to Done with err recorded, unless an abort
// got there first.
func (r *Request) fail(err error) {
	var fired bool
	r.mu.Lock()
	if r.state != Done {
		r.failure = err
		r.state = Done
		r.finish()
		fired = true
	}
	r.mu.Unlock()

	if fired {
		r.handlers.run(ReadyStateChange, r)
		r.handlers.run(Failed, r)
	}
}

// notifyLoop drains the operation's notification channel, applying
// each notification in arrival order. It is the single goroutine that
// mutates the request on the transport's behalf. It keeps draining
// after the request reaches Done so the transport is never blocked on
// an abandoned channel.
func (r *Request) notifyLoop(op transport.Operation) {
	for n := range op.Notifications() {
		r.apply(n)
	}
}

func drain(op transport.Operation) {
	for range op.Notifications() {
	}
}

// apply applies one transport notification to the request and then
// runs the handlers for any events the notification produced.
// Notifications arriving after the request is Done or aborted are
// discarded without mutating the request.
func (r *Request) apply(n transport.Notification) {
	r.mu.Lock()
	if r.state == Done || r.abort.aborted() {
		r.mu.Unlock()
		if r.logger != nil {
			r.logger.Debug().Stringer("kind", n.Kind).Str("url", r.URL()).
				Msg("xhr: notification dropped")
		}
		return
	}

	var evts []Event
	switch n.Kind {
	case transport.Headers:
		r.setState(HeadersReceived)
		r.status = n.Status
		r.hasStatus = true
		evts = append(evts, ReadyStateChange)
	case transport.Data:
		if r.state == HeadersReceived {
			r.setState(Loading)
			evts = append(evts, ReadyStateChange)
		} else if r.state != Loading {
			panic(&InvalidTransitionError{From: r.state, To: Loading})
		}
		r.body = append(r.body, n.Data...)
		r.hasBody = true
		evts = append(evts, Progress)
	case transport.Complete:
		r.setState(Done)
		r.finish()
		evts = append(evts, ReadyStateChange, Load)
	case transport.Failed:
		r.failure = n.Err
		r.state = Done
		r.finish()
		evts = append(evts, ReadyStateChange, Failed)
	case transport.Aborted:
		// The request did not cancel this operation (a local abort
		// would have been caught by the discard check above), so the
		// transport tore the operation down on its own.
		r.failure = errTransportAborted
		r.state = Done
		r.finish()
		evts = append(evts, ReadyStateChange, Failed)
	default:
		panic(fmt.Sprintf("xhr: unknown notification kind %d", int(n.Kind)))
	}
	r.mu.Unlock()

	for _, evt := range evts {
		r.handlers.run(evt, r)
	}
}
