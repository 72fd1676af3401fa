// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"sync"
	"sync/atomic"
)

// An abortController tracks whether cancellation has been requested
// for a request and guarantees the cancellation work runs at most
// once. The sticky flag is what the notification path consults to
// discard notifications still in flight when cancellation was
// requested, even ones already buffered in the pipeline.
type abortController struct {
	once sync.Once
	flag atomic.Bool
}

// request runs f on the first call and does nothing on subsequent
// calls. The sticky flag is visible to aborted before f starts.
func (c *abortController) request(f func()) {
	c.once.Do(func() {
		c.flag.Store(true)
		f()
	})
}

// aborted reports whether cancellation has been requested.
func (c *abortController) aborted() bool {
	return c.flag.Load()
}
