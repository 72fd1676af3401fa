// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/gogama/xhr"
	"github.com/gogama/xhr/transporttest"
)

const (
	waitFor = 2 * time.Second
	tick    = time.Millisecond
)

func TestClient_ZeroValue(t *testing.T) {
	c := &xhr.Client{}

	r := c.NewRequest()

	assert.Equal(t, xhr.Unsent, r.ReadyState())
	assert.NoError(t, r.Open("GET", "http://example.com"))
	assert.Equal(t, xhr.Opened, r.ReadyState())
}

func TestClient_Get(t *testing.T) {
	tr := transporttest.New()
	c := &xhr.Client{Transport: tr}

	r, err := c.Get("http://test/a")

	require.NoError(t, err)
	op := tr.Op(0)
	assert.Equal(t, "GET", op.Method)
	assert.Equal(t, "http://test/a", op.URL)
	assert.Nil(t, op.Body)

	op.SendHeaders(200)
	require.Eventually(t, func() bool {
		return r.ReadyState() == xhr.HeadersReceived
	}, waitFor, tick)
	status, ok := r.Status()
	assert.True(t, ok)
	assert.Equal(t, 200, status)

	op.SendData([]byte("hi"))
	op.Complete()
	<-r.Done()

	assert.Equal(t, xhr.Done, r.ReadyState())
	text, ok := r.ResponseText()
	assert.True(t, ok)
	assert.Equal(t, "hi", text)
	assert.NoError(t, r.Err())
}

func TestClient_Post(t *testing.T) {
	tr := transporttest.New()
	c := &xhr.Client{Transport: tr}

	r, err := c.Post("http://test/upload", "ham")

	require.NoError(t, err)
	op := tr.Op(0)
	assert.Equal(t, "POST", op.Method)
	assert.Equal(t, []byte("ham"), op.Body)

	op.SendHeaders(201)
	op.Complete()
	<-r.Done()

	status, _ := r.Status()
	assert.Equal(t, 201, status)
}

func TestClient_BeginError(t *testing.T) {
	tr := transporttest.New()
	beginErr := errors.New("no route")
	tr.FailBegin(beginErr)
	c := &xhr.Client{Transport: tr}

	r, err := c.Get("http://test/a")

	assert.Same(t, beginErr, err)
	assert.Nil(t, r)
}

func TestClient_Abort(t *testing.T) {
	tr := transporttest.New()
	c := &xhr.Client{Transport: tr}
	r, err := c.Get("http://test/a")
	require.NoError(t, err)

	r.Abort()

	assert.Equal(t, xhr.Done, r.ReadyState())
	status, ok := r.Status()
	assert.True(t, ok)
	assert.Equal(t, 0, status)
	assert.True(t, r.Aborted())
	assert.True(t, tr.Op(0).Cancelled())
	<-r.Done()
}

func TestClient_HandlerSequence(t *testing.T) {
	evts := make(chan string, 16)
	handlers := &xhr.HandlerGroup{}
	h := xhr.HandlerFunc(func(evt xhr.Event, r *xhr.Request) {
		evts <- fmt.Sprintf("%s:%s", evt, r.ReadyState())
	})
	for _, evt := range xhr.Events() {
		handlers.PushBack(evt, h)
	}
	tr := transporttest.New()
	c := &xhr.Client{Transport: tr, Handlers: handlers}

	r, err := c.Get("http://test/a")
	require.NoError(t, err)
	op := tr.Op(0)
	op.SendHeaders(200)
	op.SendData([]byte("hi"))
	op.Complete()
	<-r.Done()

	want := []string{
		"ReadyStateChange:Opened",
		"ReadyStateChange:HeadersReceived",
		"ReadyStateChange:Loading",
		"Progress:Loading",
		"ReadyStateChange:Done",
		"Load:Done",
	}
	for _, w := range want {
		assert.Equal(t, w, <-evts)
	}
}

func TestClient_ParallelRequests(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			tr := transporttest.New()
			c := &xhr.Client{Transport: tr}
			r, err := c.Get(fmt.Sprintf("http://test/%d", i))
			if err != nil {
				return err
			}
			op := tr.Op(0)
			op.SendHeaders(200)
			op.SendData([]byte(fmt.Sprintf("body-%d", i)))
			op.Complete()
			<-r.Done()
			text, ok := r.ResponseText()
			if !ok || text != fmt.Sprintf("body-%d", i) {
				return fmt.Errorf("request %d: unexpected body %q", i, text)
			}
			return nil
		})
	}

	assert.NoError(t, g.Wait())
}

func TestClient_TransportFailure(t *testing.T) {
	tr := transporttest.New()
	c := &xhr.Client{Transport: tr}
	r, err := c.Get("http://test/a")
	require.NoError(t, err)
	reason := errors.New("connection reset")

	tr.Op(0).Fail(reason)
	<-r.Done()

	assert.Equal(t, xhr.Done, r.ReadyState())
	assert.Same(t, reason, r.Err())
	_, ok := r.Status()
	assert.False(t, ok)
}

func TestInflate(t *testing.T) {
	t.Run("nil requester", func(t *testing.T) {
		assert.Panics(t, func() { xhr.Inflate(nil) })
	})
	t.Run("already an issuer", func(t *testing.T) {
		c := &xhr.Client{Transport: transporttest.New()}

		i := xhr.Inflate(c)

		assert.Equal(t, xhr.Issuer(c), i)
	})
	t.Run("bare requester", func(t *testing.T) {
		tr := transporttest.New()
		rq := requesterOnly{c: &xhr.Client{Transport: tr}}

		i := xhr.Inflate(rq)
		r, err := i.Get("http://test/a")

		require.NoError(t, err)
		tr.Op(0).SendHeaders(200)
		tr.Op(0).Complete()
		<-r.Done()
		status, _ := r.Status()
		assert.Equal(t, 200, status)

		r, err = i.Post("http://test/b", []byte("spam"))
		require.NoError(t, err)
		assert.Equal(t, []byte("spam"), tr.Op(1).Body)
		r.Abort()
		assert.True(t, tr.Op(1).Cancelled())
	})
}

type requesterOnly struct {
	c *xhr.Client
}

func (rq requesterOnly) NewRequest() *xhr.Request {
	return rq.c.NewRequest()
}
