// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

// Requester is the interface that wraps the basic NewRequest method.
//
// NewRequest returns a fresh Request in the Unsent state. Client
// implements the Requester interface, and any other Requester
// implementation must behave substantially the same as
// Client.NewRequest.
//
// Any Requester can be converted into an Issuer via the Inflate
// function.
type Requester interface {
	NewRequest() *Request
}

// Getter is the interface that wraps the basic Get method.
//
// Get creates a request for a GET of the specified URL, opens and
// sends it, and returns the in-flight request. Client implements the
// Getter interface, and any other Getter implementation must behave
// substantially the same as Client.Get.
//
// Any Requester can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*Request, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post creates a request for a POST to the specified URL, opens it,
// and sends it with the given body, returning the in-flight request.
// Client implements the Poster interface, and any other Poster
// implementation must behave substantially the same as Client.Post.
//
// Any Requester can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url string, body interface{}) (*Request, error)
}

// Issuer is the interface that groups the basic NewRequest, Get, and
// Post methods.
//
// Any Requester can be converted into an Issuer via the Inflate
// function.
type Issuer interface {
	Requester
	Getter
	Poster
}

// Get uses the specified Requester to open and send a GET of the
// specified URL, returning the in-flight request.
func Get(rq Requester, url string) (*Request, error) {
	r := rq.NewRequest()
	if err := r.Open("GET", url); err != nil {
		return nil, err
	}
	if err := r.Send(nil); err != nil {
		return nil, err
	}
	return r, nil
}

// Post uses the specified Requester to open and send a POST to the
// specified URL with the given body, returning the in-flight request.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by BodyBytes, namely: string; []byte; io.Reader;
// and io.ReadCloser.
func Post(rq Requester, url string, body interface{}) (*Request, error) {
	r := rq.NewRequest()
	if err := r.Open("POST", url); err != nil {
		return nil, err
	}
	if err := r.Send(body); err != nil {
		return nil, err
	}
	return r, nil
}

// Inflate converts any non-nil Requester into an Issuer. This may be
// helpful for interop across library boundaries, i.e. if code that
// only has access to a Requester needs to call a function that
// requires an Issuer.
func Inflate(rq Requester) Issuer {
	if rq == nil {
		panic("xhr: nil requester")
	}

	if i, ok := rq.(Issuer); ok {
		return i
	}

	return inflated{rq}
}

type inflated struct {
	requester Requester
}

func (i inflated) NewRequest() *Request {
	return i.requester.NewRequest()
}

func (i inflated) Get(url string) (*Request, error) {
	return Get(i.requester, url)
}

func (i inflated) Post(url string, body interface{}) (*Request, error) {
	return Post(i.requester, url, body)
}
