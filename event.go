// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to observe the lifecycle
// of the requests it creates.
type Event int

const (
	// ReadyStateChange identifies the event that occurs whenever a
	// request's lifecycle state changes, including the change to Opened
	// caused by Open and the final change to Done however it is
	// reached.
	//
	// When a request fires ReadyStateChange, ReadyState already returns
	// the new state, and any response metadata belonging to that state
	// (status, partial body) is already visible.
	ReadyStateChange Event = iota
	// Progress identifies the event that occurs after a chunk of
	// response body has been appended to the request's response buffer.
	//
	// When a request fires Progress, the response accessors return the
	// body accumulated so far, which may be empty if the transport
	// delivered an empty chunk. On the first chunk, Progress fires
	// after the ReadyStateChange announcing the Loading state.
	Progress
	// Load identifies the event that occurs when the transport reports
	// the response is complete and the request reaches Done
	// successfully.
	//
	// Load always fires after the ReadyStateChange announcing the Done
	// state. It never fires for a request that failed or was aborted.
	Load
	// Failed identifies the event that occurs when the transport
	// reports that the request failed. The request is in the Done state
	// and Err returns the transport's reason.
	//
	// Failed always fires after the ReadyStateChange announcing the
	// Done state.
	Failed
	// Aborted identifies the event that occurs when Abort moves a
	// request to Done. It fires at most once per request, after the
	// ReadyStateChange announcing the Done state, and never fires if
	// Abort is called on a request that is already Done.
	Aborted
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of event types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"ReadyStateChange",
	"Progress",
	"Load",
	"Failed",
	"Aborted",
}

// Events returns a slice containing all events which can occur during
// the lifecycle of a request.
func Events() []Event {
	return []Event{
		ReadyStateChange,
		Progress,
		Load,
		Failed,
		Aborted,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
