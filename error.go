// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"errors"
	"fmt"
)

// ErrAlreadyOpened is returned by Request.Open when the request has
// already left the Unsent state.
var ErrAlreadyOpened = errors.New("xhr: request already opened")

// ErrNotOpened is returned by Request.Send when the request is not in
// the Opened state, in particular when Open has not been called.
var ErrNotOpened = errors.New("xhr: request not opened")

// ErrAlreadySent is returned by Request.Send when Send has already
// been called on the request.
var ErrAlreadySent = errors.New("xhr: request already sent")

// An InvalidTransitionError describes a lifecycle transition that the
// transition rules do not allow.
//
// An invalid transition can only be caused by a defect in this package
// or in a transport adapter, never by API misuse, so it is surfaced by
// panicking with a value of this type rather than by an error return.
type InvalidTransitionError struct {
	From ReadyState
	To   ReadyState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("xhr: invalid transition from %s to %s", e.From, e.To)
}
