// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/c9s/goprocinfo/linux"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	// ConfigurationKey is the configuration key under which the operations server is configured
	ConfigurationKey = "ops"

	MetricsPath = "/metrics"
	HealthPath  = "/health"

	StatusUp = "UP"

	// DefaultMemInfo is the meminfo file read for health reports when none is configured
	DefaultMemInfo = "/proc/meminfo"
)

// Configuration holds the externally configurable options for the operations server
type Configuration struct {
	// Address is the host:port the operations server binds to.  If empty, no operations server runs.
	Address string `mapstructure:"address"`

	// MemInfo is the location of the meminfo file used in health reports.  Defaults to DefaultMemInfo.
	MemInfo string `mapstructure:"memInfo"`
}

// Defaults returns the configuration keys and default values for the operations server, relative
// to ConfigurationKey
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		ConfigurationKey + ".address": "",
		ConfigurationKey + ".memInfo": DefaultMemInfo,
	}
}

// Enabled tests if an operations server should run
func (c Configuration) Enabled() bool {
	return len(c.Address) > 0
}

// Options describes the operations handler
type Options struct {
	// Gatherer is the source for the metrics endpoint.  Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Logger receives errors encountered while serving metrics or health.  Defaults to a no-op logger.
	Logger *zap.Logger

	// MemInfo is the location of the meminfo file.  Defaults to DefaultMemInfo.
	MemInfo string

	// Started is the time the process started, used to report uptime.  Defaults to the time NewHandler was called.
	Started time.Time
}

// Report is the JSON body of the health endpoint
type Report struct {
	Status     string `json:"status"`
	Uptime     string `json:"uptime"`
	MemTotalKB uint64 `json:"memTotalKB,omitempty"`
	MemFreeKB  uint64 `json:"memFreeKB,omitempty"`
}

type healthHandler struct {
	logger  *zap.Logger
	memInfo string
	started time.Time
	now     func() time.Time
}

func (hh *healthHandler) report() Report {
	r := Report{
		Status: StatusUp,
		Uptime: hh.now().Sub(hh.started).Round(time.Second).String(),
	}

	memInfo, err := linux.ReadMemInfo(hh.memInfo)
	if err != nil {
		hh.logger.Debug("unable to read memory information", zap.String("location", hh.memInfo), zap.Error(err))
		return r
	}

	r.MemTotalKB = memInfo.MemTotal
	r.MemFreeKB = memInfo.MemFree
	return r
}

func (hh *healthHandler) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	body, err := json.Marshal(hh.report())
	if err != nil {
		hh.logger.Error("unable to marshal health report", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(http.StatusOK)
	response.Write(body)
}

// NewHandler produces the router for the operations server
func NewHandler(o Options) http.Handler {
	if o.Gatherer == nil {
		o.Gatherer = prometheus.DefaultGatherer
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if len(o.MemInfo) == 0 {
		o.MemInfo = DefaultMemInfo
	}

	if o.Started.IsZero() {
		o.Started = time.Now()
	}

	router := mux.NewRouter()
	router.Handle(
		MetricsPath,
		promhttp.HandlerFor(o.Gatherer, promhttp.HandlerOpts{
			ErrorLog: zap.NewStdLog(o.Logger),
		}),
	).Methods("GET")

	router.Handle(
		HealthPath,
		&healthHandler{
			logger:  o.Logger,
			memInfo: o.MemInfo,
			started: o.Started,
			now:     time.Now,
		},
	).Methods("GET")

	return router
}
