// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package nethttp provides a transport.Transport backed by the standard
net/http client.

The zero value Transport is valid and uses http.DefaultClient. To
control redirects, cookies, TLS, or connection pooling, provide a
custom HTTPDoer:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	client := &xhr.Client{
		Transport: &nethttp.Transport{HTTPDoer: doer},
	}
*/
package nethttp
