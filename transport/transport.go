// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

// A Kind identifies the type of a Notification emitted by an
// Operation.
type Kind int

const (
	// Headers identifies the notification emitted when the response
	// headers have arrived. The notification's Status field carries the
	// response status code. It is emitted at most once per operation,
	// before any Data notification.
	Headers Kind = iota
	// Data identifies a notification carrying a chunk of response body
	// in its Data field. An operation may emit any number of Data
	// notifications, including none, and a chunk may be empty.
	Data
	// Complete identifies the terminal notification of an operation
	// that finished successfully. No further notifications follow it.
	Complete
	// Failed identifies the terminal notification of an operation that
	// could not be completed. The notification's Err field carries the
	// reason. No further notifications follow it.
	Failed
	// Aborted identifies the terminal notification of an operation
	// that was cancelled via Cancel. No further notifications follow
	// it.
	Aborted
	// kindSentinel provides the total number of notification kinds
	// typed as a Kind.
	kindSentinel

	// numKinds provides the total number of notification kinds as an
	// int.
	numKinds = int(kindSentinel)
)

var kindNames = []string{
	"Headers",
	"Data",
	"Complete",
	"Failed",
	"Aborted",
}

// Kinds returns a slice containing all notification kinds an operation
// can emit.
func Kinds() []Kind {
	return []Kind{
		Headers,
		Data,
		Complete,
		Failed,
		Aborted,
	}
}

// Valid indicates whether k is one of the defined notification kinds.
// An operation emitting a notification with an invalid kind violates
// the transport contract.
func (k Kind) Valid() bool {
	return 0 <= int(k) && int(k) < numKinds
}

// Name returns the name of the notification kind.
func (k Kind) Name() string {
	return kindNames[int(k)]
}

// String returns the name of the notification kind.
func (k Kind) String() string {
	return k.Name()
}

// A Notification reports progress of an Operation. Exactly one of the
// payload fields is meaningful, selected by Kind: Status for Headers,
// Data for Data, and Err for Failed.
type Notification struct {
	Kind   Kind
	Status int
	Data   []byte
	Err    error
}

// An Operation is a single in-flight request started by a Transport.
//
// The operation reports its progress on the notification channel and
// closes the channel after emitting a terminal notification (Complete,
// Failed, or Aborted). The consumer must drain the channel until it is
// closed, even after cancelling, so the transport's goroutines can
// finish.
type Operation interface {
	// Notifications returns the channel on which the operation reports
	// progress. The channel is closed after the terminal notification.
	Notifications() <-chan Notification

	// Cancel requests cancellation of the operation. It returns
	// without waiting for the transport's teardown; the operation
	// acknowledges by emitting a terminal notification and closing the
	// notification channel. Cancel is idempotent and safe to call from
	// any goroutine.
	Cancel()
}

// A Transport starts request operations on behalf of the lifecycle
// layer. Implementations perform the actual network I/O; the lifecycle
// layer only consumes the notifications they emit.
//
// Begin starts a new operation for the given method and URL and
// returns without waiting for the operation to make progress. A nil
// body means the request has no body. Begin returns an error only for
// failures detectable before any I/O is attempted, such as an
// unparseable URL; failures after that point are reported with a
// Failed notification.
//
// Implementations must be safe for concurrent use by multiple
// goroutines, and each returned Operation must emit its notifications
// in the order the underlying events occurred.
type Transport interface {
	Begin(method, url string, body []byte) (Operation, error)
}
