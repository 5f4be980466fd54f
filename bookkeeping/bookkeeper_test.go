// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package bookkeeping

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestBookkeeping(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		logger, logs = newObservedLogger()
		nextCalled   = false

		next = http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			nextCalled = true
			sallust.Get(request.Context()).Info("from handler")
			response.Header().Set("Content-Type", "text/plain")
			response.WriteHeader(http.StatusAccepted)
			response.Write([]byte("Hello World"))
		})

		response = httptest.NewRecorder()
		request  = httptest.NewRequest("POST", "/test", nil)
	)

	request.Header.Set("X-Test", "value")
	New(logger, WithRequests(RequestHeaders("x-test", "x-missing")), WithResponses(Code, ResponseHeaders("content-type"))).
		Then(next).
		ServeHTTP(response, request)

	assert.True(nextCalled)
	assert.Equal(http.StatusAccepted, response.Code)
	assert.Equal("text/plain", response.Header().Get("Content-Type"))
	assert.Equal("Hello World", response.Body.String())

	entries := logs.All()
	require.Len(entries, 2)

	fromHandler := entries[0].ContextMap()
	assert.Equal("from handler", entries[0].Message)
	assert.NotEmpty(fromHandler[RequestIDKey])
	assert.Equal("POST", fromHandler["method"])

	access := entries[1]
	assert.Equal("request", access.Message)
	assert.Equal(zapcore.InfoLevel, access.Level)

	fields := access.ContextMap()
	assert.Equal(fromHandler[RequestIDKey], fields[RequestIDKey])
	assert.Equal("POST", fields["method"])
	assert.Equal("/test", fields["path"])
	assert.Equal(request.RemoteAddr, fields["remoteAddress"])
	assert.Equal("value", fields["requestX-Test"])
	assert.NotContains(fields, "requestX-Missing")
	assert.Equal(int64(http.StatusAccepted), fields["responseCode"])
	assert.Equal(int64(len("Hello World")), fields["written"])
	assert.Equal("text/plain", fields["responseContent-Type"])
	assert.Contains(fields, "duration")
}

func TestBookkeepingImplicitStatus(t *testing.T) {
	var (
		assert       = assert.New(t)
		logger, logs = newObservedLogger()
		response     = httptest.NewRecorder()
	)

	New(logger, WithResponses(Code)).
		ThenFunc(func(response http.ResponseWriter, _ *http.Request) {
			response.Write([]byte("body"))
		}).
		ServeHTTP(response, httptest.NewRequest("GET", "/", nil))

	assert.Equal(http.StatusOK, response.Code)
	assert.Equal("body", response.Body.String())
	assert.Equal(1, logs.Len())
	assert.Equal(int64(http.StatusOK), logs.All()[0].ContextMap()["responseCode"])
}

func TestBookkeepingUniqueRequestIDs(t *testing.T) {
	var (
		assert       = assert.New(t)
		logger, logs = newObservedLogger()
		handler      = New(logger).ThenFunc(func(http.ResponseWriter, *http.Request) {})
	)

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}

	seen := make(map[interface{}]bool)
	for _, e := range logs.All() {
		id := e.ContextMap()[RequestIDKey]
		assert.False(seen[id])
		seen[id] = true
	}

	assert.Len(seen, 3)
}
