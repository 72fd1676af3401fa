// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transport defines the boundary between the request lifecycle
in package xhr and the code that actually moves bytes over the
network.

A Transport starts operations; an Operation reports its progress as an
ordered stream of Notifications on a channel it closes after the
terminal notification. Package xhr consumes these notifications to
advance a request through its lifecycle states, and never touches the
network itself.

Package nethttp provides a Transport backed by the standard net/http
client. Package transporttest provides an in-memory Transport whose
notifications are emitted by hand, for testing lifecycle behavior
without a network.
*/
package transport
