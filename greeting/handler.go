// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package greeting

import (
	"net/http"
	"strconv"
)

const (
	// StatusCode is the status written for every request
	StatusCode = http.StatusOK

	// ContentType is the exact value of the Content-Type header written for every request
	ContentType = "text/plain"

	// Body is the exact response body.  There is no trailing newline.
	Body = "Hello World"
)

var (
	body          = []byte(Body)
	contentLength = strconv.Itoa(len(body))
)

// Handler writes the fixed greeting response.  The zero value is ready to use.
type Handler struct{}

// ServeHTTP writes StatusCode, ContentType and Body.  The request, including its body,
// is never read.
func (Handler) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	header := response.Header()
	header.Set("Content-Type", ContentType)
	header.Set("Content-Length", contentLength)
	response.WriteHeader(StatusCode)
	response.Write(body) // nolint: errcheck
}

// New returns the greeting handler as an http.Handler
func New() http.Handler {
	return Handler{}
}
