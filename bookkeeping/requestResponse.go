// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package bookkeeping

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Code logs the status code of the response
func Code(response CapturedResponse) []zap.Field {
	return []zap.Field{zap.Int("responseCode", response.Code)}
}

// RequestHeaders returns a RequestFunc that logs the named request headers.  Absent headers are skipped.
func RequestHeaders(headers ...string) RequestFunc {
	canonical := canonicalize(headers)
	return func(request *http.Request) []zap.Field {
		return headerFields("request", request.Header, canonical)
	}
}

// ResponseHeaders returns a ResponseFunc that logs the named response headers.  Absent headers are skipped.
func ResponseHeaders(headers ...string) ResponseFunc {
	canonical := canonicalize(headers)
	return func(response CapturedResponse) []zap.Field {
		return headerFields("response", response.Header, canonical)
	}
}

func canonicalize(headers []string) []string {
	canonical := make([]string, 0, len(headers))
	for _, h := range headers {
		canonical = append(canonical, http.CanonicalHeaderKey(h))
	}

	return canonical
}

func headerFields(prefix string, header http.Header, names []string) []zap.Field {
	var fields []zap.Field
	for _, name := range names {
		if values := header.Values(name); len(values) > 0 {
			fields = append(fields, zap.String(prefix+name, strings.Join(values, ",")))
		}
	}

	return fields
}
