// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

// A ReadyState identifies the lifecycle position of a Request. A
// request starts in the Unsent state and moves forward through the
// remaining states as the transport reports progress, ending in Done.
type ReadyState int

const (
	// Unsent indicates the request has been created but Open has not
	// been called yet.
	Unsent ReadyState = iota
	// Opened indicates Open has been called, fixing the request method
	// and URL. The request stays in Opened after Send until the
	// transport reports the arrival of response headers.
	Opened
	// HeadersReceived indicates the transport has received the response
	// headers. The response status is available from this state onward.
	HeadersReceived
	// Loading indicates the response body is being downloaded. The
	// response accessors return the partial body received so far.
	Loading
	// Done indicates the request is finished: the response is complete,
	// or the transport reported a failure, or the request was aborted.
	// A request in the Done state never changes again.
	Done
	// readyStateSentinel provides the total number of lifecycle states
	// typed as a ReadyState.
	readyStateSentinel

	// numReadyStates provides the total number of lifecycle states as
	// an int.
	numReadyStates = int(readyStateSentinel)
)

var readyStateNames = []string{
	"Unsent",
	"Opened",
	"HeadersReceived",
	"Loading",
	"Done",
}

// States returns a slice containing all request lifecycle states, in
// the order a request progresses through them.
func States() []ReadyState {
	return []ReadyState{
		Unsent,
		Opened,
		HeadersReceived,
		Loading,
		Done,
	}
}

// Name returns the name of the lifecycle state.
func (s ReadyState) Name() string {
	return readyStateNames[int(s)]
}

// String returns the name of the lifecycle state.
func (s ReadyState) String() string {
	return s.Name()
}

// CanTransition indicates whether the lifecycle rules allow a request
// to move from state from to state to.
//
// The allowed transitions are Unsent to Opened, Opened to
// HeadersReceived, HeadersReceived to Loading, Loading to Done, and
// HeadersReceived directly to Done (a response short enough to arrive
// in one piece may never pass through Loading).
//
// CanTransition does not cover the abort path. Aborting a request
// forces it to Done from any earlier state; use CanAbort to test that
// edge.
func CanTransition(from, to ReadyState) bool {
	switch from {
	case Unsent:
		return to == Opened
	case Opened:
		return to == HeadersReceived
	case HeadersReceived:
		return to == Loading || to == Done
	case Loading:
		return to == Done
	default:
		return false
	}
}

// CanAbort indicates whether a request in state from may be aborted.
// Every state except Done may be aborted; aborting forces the request
// directly to Done.
func CanAbort(from ReadyState) bool {
	return from != Done
}

// StateForCode maps a transport-reported integer state code to a
// ReadyState. The mapping is the documented one: 0 Unsent, 1 Opened,
// 2 HeadersReceived, 3 Loading, 4 Done. The second return value is
// false for any other code, which indicates a defective transport
// adapter rather than a runtime condition.
func StateForCode(code int) (ReadyState, bool) {
	if code < 0 || code >= numReadyStates {
		return Unsent, false
	}
	return ReadyState(code), true
}
