// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nethttp_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/xhr"
	"github.com/gogama/xhr/nethttp"
)

const (
	waitFor = 5 * time.Second
	tick    = time.Millisecond
)

func newClient(server *httptest.Server) *xhr.Client {
	return &xhr.Client{
		Transport: &nethttp.Transport{HTTPDoer: server.Client()},
	}
}

func TestTransport_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = io.WriteString(w, "hello")
	}))
	defer server.Close()

	r, err := newClient(server).Get(server.URL)

	require.NoError(t, err)
	<-r.Done()
	assert.Equal(t, xhr.Done, r.ReadyState())
	status, ok := r.Status()
	assert.True(t, ok)
	assert.Equal(t, 200, status)
	text, ok := r.ResponseText()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.NoError(t, r.Err())
}

func TestTransport_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(404)
		_, _ = io.WriteString(w, "not here")
	}))
	defer server.Close()

	r, err := newClient(server).Get(server.URL)

	require.NoError(t, err)
	<-r.Done()
	status, _ := r.Status()
	assert.Equal(t, 404, status)
	text, _ := r.ResponseText()
	assert.Equal(t, "not here", text)
	assert.NoError(t, r.Err())
}

func TestTransport_PostEcho(t *testing.T) {
	methods := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		methods <- req.Method
		b, _ := io.ReadAll(req.Body)
		_, _ = w.Write(b)
	}))
	defer server.Close()

	r, err := newClient(server).Post(server.URL, "ham and eggs")

	require.NoError(t, err)
	<-r.Done()
	assert.Equal(t, "POST", <-methods)
	text, _ := r.ResponseText()
	assert.Equal(t, "ham and eggs", text)
}

func TestTransport_NoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(204)
	}))
	defer server.Close()

	r, err := newClient(server).Get(server.URL)

	require.NoError(t, err)
	<-r.Done()
	status, _ := r.Status()
	assert.Equal(t, 204, status)
	_, ok := r.ResponseText()
	assert.False(t, ok)
}

func TestTransport_ChunkedProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = io.WriteString(w, "hello")
	}))
	defer server.Close()

	var mu sync.Mutex
	progress := 0
	handlers := &xhr.HandlerGroup{}
	handlers.PushBack(xhr.Progress, xhr.HandlerFunc(func(xhr.Event, *xhr.Request) {
		mu.Lock()
		progress++
		mu.Unlock()
	}))
	c := &xhr.Client{
		Transport: &nethttp.Transport{HTTPDoer: server.Client(), ChunkSize: 2},
		Handlers:  handlers,
	}

	r, err := c.Get(server.URL)

	require.NoError(t, err)
	<-r.Done()
	text, _ := r.ResponseText()
	assert.Equal(t, "hello", text)
	// A 5 byte body read 2 bytes at a time arrives in at least 3
	// chunks.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return progress >= 3
	}, waitFor, tick)
}

func TestTransport_AbortMidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(200)
		_, _ = io.WriteString(w, "part")
		w.(http.Flusher).Flush()
		<-req.Context().Done()
	}))
	defer server.Close()

	r, err := newClient(server).Get(server.URL)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		text, ok := r.ResponseText()
		return ok && text == "part"
	}, waitFor, tick)

	r.Abort()

	assert.Equal(t, xhr.Done, r.ReadyState())
	assert.True(t, r.Aborted())
	status, ok := r.Status()
	assert.True(t, ok)
	assert.Equal(t, 200, status)
	text, _ := r.ResponseText()
	assert.Equal(t, "part", text)
	assert.NoError(t, r.Err())
}

func TestTransport_BeginError(t *testing.T) {
	c := &xhr.Client{Transport: &nethttp.Transport{}}
	r := c.NewRequest()
	require.NoError(t, r.Open("GET", "http://bad host/"))

	err := r.Send(nil)

	assert.Error(t, err)
	assert.Equal(t, xhr.Done, r.ReadyState())
	assert.Error(t, r.Err())
}

func TestTransport_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	url := server.URL
	server.Close()

	c := &xhr.Client{Transport: &nethttp.Transport{}}
	r, err := c.Get(url)

	require.NoError(t, err)
	<-r.Done()
	assert.Equal(t, xhr.Done, r.ReadyState())
	assert.Error(t, r.Err())
	_, ok := r.Status()
	assert.False(t, ok)
}
