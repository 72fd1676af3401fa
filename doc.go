// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package xhr provides asynchronous request handles with an observable
lifecycle, independent of any particular network stack.

Create a Client, then create and start requests. Open and Send return
immediately; the request progresses through its lifecycle states
(Unsent, Opened, HeadersReceived, Loading, Done) as the transport
reports progress.

	client := &xhr.Client{}
	r := client.NewRequest()
	err := r.Open("GET", "https://www.example.com")
	...
	err = r.Send(nil)
	...
	<-r.Done()
	if status, ok := r.Status(); ok {
		...
	}
	text, _ := r.ResponseText()

The lifecycle can be observed three ways: by polling (ReadyState,
Status, ResponseText, and the other accessors are safe to call from
any goroutine and always see a consistent snapshot); by waiting on the
Done channel; or by installing event handlers in the client:

	handlers := &xhr.HandlerGroup{}
	handlers.PushBack(xhr.Progress, xhr.HandlerFunc(
		func(_ xhr.Event, r *xhr.Request) {
			b, _ := r.ResponseBytes()
			log.Printf("%d bytes of %s", len(b), r.URL())
		}),
	)
	client := &xhr.Client{Handlers: handlers}

A request may be cancelled at any time before it is Done:

	r.Abort()
	// r.ReadyState() == xhr.Done, immediately and permanently

Abort marks the request terminal from the caller's perspective before
it returns; the transport's own teardown may finish later. The package
implements no timeouts: a caller wanting one should layer it on
externally, for example with time.AfterFunc(d, r.Abort).

For control over how requests are performed on the network, set a
custom transport. The nethttp package provides one backed by the
standard net/http client, and any implementation of
transport.Transport can be substituted, including the hand-driven one
in transporttest:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	client := &xhr.Client{
		Transport: &nethttp.Transport{HTTPDoer: doer},
	}

Package xhr provides basic interfaces for the client's methods
(Requester, Getter, and Poster); a combined interface that composes
them (Issuer); utility functions for working with a Requester (Get,
Post, and Inflate); and a Prometheus instrumentation hook (Metrics).
*/
package xhr
