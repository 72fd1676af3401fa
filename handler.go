// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

// A HandlerGroup is a group of event handler chains which can be
// installed in a Client.
//
// Handlers for a given request are always run from the single
// goroutine applying that request's transport notifications, or from
// the goroutine that called Open or Abort, after the corresponding
// state mutation is complete. Handlers installed in a Client shared by
// several requests may therefore run concurrently with each other on
// behalf of different requests, and must be safe for that use.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("xhr: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, r *Request) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, r)
	}
}

func run(chain []Handler, evt Event, r *Request) {
	for _, h := range chain {
		h.Handle(evt, r)
	}
}

// A Handler handles the occurrence of an event during the lifecycle of
// a request.
type Handler interface {
	Handle(Event, *Request)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Request)

// Handle calls f(evt, r).
func (f HandlerFunc) Handle(evt Event, r *Request) {
	f(evt, r)
}
