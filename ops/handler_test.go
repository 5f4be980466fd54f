// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeMemInfo(t *testing.T) string {
	location := filepath.Join(t.TempDir(), "meminfo")
	require.NoError(t,
		os.WriteFile(location, []byte("MemTotal:        2048 kB\nMemFree:         1024 kB\nBuffers:          128 kB\n"), 0600),
	)

	return location
}

func TestConfigurationEnabled(t *testing.T) {
	assert := assert.New(t)
	assert.False(Configuration{}.Enabled())
	assert.True(Configuration{Address: "127.0.0.1:3001"}.Enabled())
}

func TestDefaults(t *testing.T) {
	var (
		assert = assert.New(t)
		d      = Defaults()
	)

	assert.Equal("", d["ops.address"])
	assert.Equal(DefaultMemInfo, d["ops.memInfo"])
	assert.Len(d, 2)
}

func testNewHandlerMetrics(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		registry = prometheus.NewRegistry()
		counter  = prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "a test counter"})
		handler  = NewHandler(Options{Gatherer: registry, Logger: zaptest.NewLogger(t)})
		response = httptest.NewRecorder()
	)

	require.NoError(registry.Register(counter))
	counter.Inc()

	handler.ServeHTTP(response, httptest.NewRequest("GET", MetricsPath, nil))
	assert.Equal(http.StatusOK, response.Code)
	assert.Contains(response.Body.String(), "test_total 1")
}

func testNewHandlerHealth(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		handler = NewHandler(Options{
			Gatherer: prometheus.NewRegistry(),
			Logger:   zaptest.NewLogger(t),
			MemInfo:  writeMemInfo(t),
			Started:  time.Now().Add(-time.Minute),
		})

		response = httptest.NewRecorder()
	)

	handler.ServeHTTP(response, httptest.NewRequest("GET", HealthPath, nil))
	assert.Equal(http.StatusOK, response.Code)
	assert.Equal("application/json", response.Header().Get("Content-Type"))

	var report Report
	require.NoError(json.Unmarshal(response.Body.Bytes(), &report))
	assert.Equal(StatusUp, report.Status)
	assert.Equal("1m0s", report.Uptime)
	assert.Equal(uint64(2048), report.MemTotalKB)
	assert.Equal(uint64(1024), report.MemFreeKB)
}

func testNewHandlerHealthNoMemInfo(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		handler = NewHandler(Options{
			Logger:  zaptest.NewLogger(t),
			MemInfo: filepath.Join(t.TempDir(), "nosuch"),
		})

		response = httptest.NewRecorder()
	)

	handler.ServeHTTP(response, httptest.NewRequest("GET", HealthPath, nil))
	assert.Equal(http.StatusOK, response.Code)

	var fields map[string]interface{}
	require.NoError(json.Unmarshal(response.Body.Bytes(), &fields))
	assert.Equal(StatusUp, fields["status"])
	assert.Contains(fields, "uptime")
	assert.NotContains(fields, "memTotalKB")
	assert.NotContains(fields, "memFreeKB")
}

func testNewHandlerHealthDefaultMemInfo(t *testing.T) {
	if _, err := os.Stat(DefaultMemInfo); err != nil {
		t.Skip("no meminfo available on this platform")
	}

	var (
		assert  = assert.New(t)
		require = require.New(t)

		handler  = NewHandler(Options{Gatherer: prometheus.NewRegistry()})
		response = httptest.NewRecorder()
	)

	handler.ServeHTTP(response, httptest.NewRequest("GET", HealthPath, nil))
	assert.Equal(http.StatusOK, response.Code)

	var report Report
	require.NoError(json.Unmarshal(response.Body.Bytes(), &report))
	assert.Equal(StatusUp, report.Status)
	assert.NotZero(report.MemTotalKB)
}

func testNewHandlerNotFound(t *testing.T) {
	var (
		assert  = assert.New(t)
		handler = NewHandler(Options{})
	)

	response := httptest.NewRecorder()
	handler.ServeHTTP(response, httptest.NewRequest("GET", "/nosuch", nil))
	assert.Equal(http.StatusNotFound, response.Code)

	response = httptest.NewRecorder()
	handler.ServeHTTP(response, httptest.NewRequest("POST", HealthPath, nil))
	assert.Equal(http.StatusMethodNotAllowed, response.Code)
}

func TestNewHandler(t *testing.T) {
	t.Run("Metrics", testNewHandlerMetrics)
	t.Run("Health", testNewHandlerHealth)
	t.Run("HealthNoMemInfo", testNewHandlerHealthNoMemInfo)
	t.Run("HealthDefaultMemInfo", testNewHandlerHealthDefaultMemInfo)
	t.Run("NotFound", testNewHandlerNotFound)
}
