// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package bookkeeping

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/justinas/alice"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// RequestIDKey is the log field holding the identifier assigned to each request
	RequestIDKey = "requestID"
)

// CapturedResponse is what bookkeeping observed about a response after the decorated handler returned
type CapturedResponse struct {
	Code    int
	Written int64
	Header  http.Header
}

// RequestFunc takes the request and returns fields to log
type RequestFunc func(request *http.Request) []zap.Field

// ResponseFunc takes the captured response and returns fields to log
type ResponseFunc func(response CapturedResponse) []zap.Field

// Option provides a single configuration option for a bookkeeping handler
type Option func(h *handler)

// WithRequests adds RequestFuncs whose fields are included in both the request-scoped logger
// and the access log line
func WithRequests(requestFuncs ...RequestFunc) Option {
	return func(h *handler) {
		h.before = append(h.before, requestFuncs...)
	}
}

// WithResponses adds ResponseFuncs whose fields are appended to the access log line
func WithResponses(responseFuncs ...ResponseFunc) Option {
	return func(h *handler) {
		h.after = append(h.after, responseFuncs...)
	}
}

// New produces an alice chain that writes one access log line per request.  Each request carries a
// request-scoped logger, retrievable via sallust.Get, tagged with a generated request id.
//
// The decorated handler's status, headers and body are passed through unchanged.
func New(logger *zap.Logger, options ...Option) alice.Chain {
	if logger == nil {
		logger = zap.NewNop()
	}

	return alice.New(func(next http.Handler) http.Handler {
		h := &handler{
			next:   next,
			logger: logger,
			now:    time.Now,
		}

		for _, o := range options {
			o(h)
		}

		return h
	})
}

type handler struct {
	next   http.Handler
	logger *zap.Logger
	before []RequestFunc
	after  []ResponseFunc
	now    func() time.Time
}

func (h *handler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	fields := []zap.Field{
		zap.String(RequestIDKey, ksuid.New().String()),
		zap.String("method", request.Method),
		zap.String("path", request.URL.EscapedPath()),
		zap.String("remoteAddress", request.RemoteAddr),
	}

	for _, before := range h.before {
		fields = append(fields, before(request)...)
	}

	requestLogger := h.logger.With(fields...)
	request = request.WithContext(sallust.With(request.Context(), requestLogger))

	start := h.now()
	m := httpsnoop.CaptureMetrics(h.next, response, request)

	captured := CapturedResponse{
		Code:    m.Code,
		Written: m.Written,
		Header:  response.Header(),
	}

	results := []zap.Field{
		zap.Int64("written", captured.Written),
		zap.Duration("duration", h.now().Sub(start)),
	}

	for _, after := range h.after {
		results = append(results, after(captured)...)
	}

	requestLogger.Info("request", results...)
}
