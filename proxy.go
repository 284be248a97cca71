package main

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
)

// apiProxy forwards /api/* to the CRM backend so the browser client
// can talk same-origin during development. Paths are forwarded with
// the /api prefix stripped; nothing is buffered, rewritten or retried.
func apiProxy(apiURL string) (http.Handler, error) {
	target, err := url.Parse(strings.TrimSuffix(apiURL, "/"))
	if err != nil {
		return nil, err
	}
	proxy := httputil.NewSingleHostReverseProxy(target)
	return http.StripPrefix("/api", proxy), nil
}
