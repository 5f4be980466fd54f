// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package greeting

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(method, target, requestBody string) *httptest.ResponseRecorder {
	var (
		response = httptest.NewRecorder()
		request  = httptest.NewRequest(method, target, strings.NewReader(requestBody))
	)

	New().ServeHTTP(response, request)
	return response
}

func testHandlerMethods(t *testing.T) {
	for _, method := range []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodPatch,
		http.MethodOptions,
		"BREW",
	} {
		t.Run(method, func(t *testing.T) {
			assert := assert.New(t)
			response := serve(method, "/", "")

			assert.Equal(http.StatusOK, response.Code)
			assert.Equal([]string{"text/plain"}, response.Header()["Content-Type"])
			assert.Equal("Hello World", response.Body.String())
		})
	}
}

func testHandlerPaths(t *testing.T) {
	for _, target := range []string{
		"/",
		"/anything",
		"/a/b/c?x=1&y=2",
		"/%00/../x",
		"/../../etc/passwd",
		"http://example.com/absolute",
	} {
		t.Run(target, func(t *testing.T) {
			assert := assert.New(t)
			response := serve(http.MethodGet, target, "")

			assert.Equal(http.StatusOK, response.Code)
			assert.Equal("text/plain", response.Header().Get("Content-Type"))
			assert.Equal("Hello World", response.Body.String())
		})
	}
}

func testHandlerIgnoresBody(t *testing.T) {
	assert := assert.New(t)
	response := serve(http.MethodPost, "/anything", `{"x":1}`)

	assert.Equal(http.StatusOK, response.Code)
	assert.Equal("text/plain", response.Header().Get("Content-Type"))
	assert.Equal("Hello World", response.Body.String())
}

func testHandlerIdempotent(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		first  = serve(http.MethodGet, "/same", "")
		second = serve(http.MethodGet, "/same", "")
	)

	require.Equal(first.Code, second.Code)
	assert.Equal(first.Header(), second.Header())
	assert.Equal(first.Body.Bytes(), second.Body.Bytes())
	assert.Equal("11", first.Header().Get("Content-Length"))
}

func TestHandler(t *testing.T) {
	t.Run("Methods", testHandlerMethods)
	t.Run("Paths", testHandlerPaths)
	t.Run("IgnoresBody", testHandlerIgnoresBody)
	t.Run("Idempotent", testHandlerIdempotent)
}
