// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/viper"
	"github.com/xmidt-org/greeter/bookkeeping"
	"github.com/xmidt-org/greeter/greeting"
	"github.com/xmidt-org/greeter/logging"
	"github.com/xmidt-org/greeter/ops"
	"github.com/xmidt-org/greeter/server"
	"github.com/xmidt-org/greeter/xmetrics"
	"github.com/xmidt-org/greeter/xviper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type tracingConfiguration struct {
	Enabled bool `mapstructure:"enabled"`
}

// configuration is the entire externally configurable state of the application.  It is
// unmarshaled in one pass so that defaults, file, environment and flags merge per key.
type configuration struct {
	Server  server.Configuration  `mapstructure:"server"`
	Log     logging.Configuration `mapstructure:"log"`
	Ops     ops.Configuration     `mapstructure:"ops"`
	Tracing tracingConfiguration  `mapstructure:"tracing"`
}

type configurationOut struct {
	fx.Out

	Server  server.Configuration
	Log     logging.Configuration
	Ops     ops.Configuration
	Tracing tracingConfiguration
}

func provideConfiguration(v *viper.Viper) (configurationOut, error) {
	var c configuration
	if err := xviper.Unmarshal(v, &c); err != nil {
		return configurationOut{}, fmt.Errorf("unable to unmarshal configuration: %w", err)
	}

	if err := c.Server.Validate(); err != nil {
		return configurationOut{}, err
	}

	return configurationOut{
		Server:  c.Server,
		Log:     c.Log,
		Ops:     c.Ops,
		Tracing: c.Tracing,
	}, nil
}

func provideLogger(c logging.Configuration) (*zap.Logger, error) {
	return logging.New(c)
}

func provideRegistry() (xmetrics.Registry, error) {
	return xmetrics.NewRegistry(&xmetrics.Options{
		Metrics: server.Metrics(),
	})
}

// provideHandler decorates the greeting handler with instrumentation, access logging and,
// if enabled, tracing
func provideHandler(tc tracingConfiguration, logger *zap.Logger, r xmetrics.Registry) http.Handler {
	chain := server.NewInstrumentChain(r).Extend(
		bookkeeping.New(
			logger,
			bookkeeping.WithRequests(bookkeeping.RequestHeaders("User-Agent")),
			bookkeeping.WithResponses(bookkeeping.Code),
		),
	)

	if tc.Enabled {
		chain = chain.Append(func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(next, "greeting")
		})
	}

	return chain.Then(greeting.New())
}

func providePrimary(c server.Configuration, logger *zap.Logger, r xmetrics.Registry, h http.Handler) *server.Server {
	o := server.WithConnectionMetrics(c.Options(server.DefaultServerName), r)
	o.Handler = h
	o.Logger = logger
	return server.New(o)
}

// startPrimary binds the greeting server when the application starts.  The startup line is
// written to stdout only after the listener is bound.
func startPrimary(stdout io.Writer) func(fx.Lifecycle, *server.Server) {
	return func(lc fx.Lifecycle, s *server.Server) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return s.Start(server.PrintListening(stdout, s.Host()))
			},
			OnStop: func(context.Context) error {
				return s.Close()
			},
		})
	}
}

func startOps(lc fx.Lifecycle, c ops.Configuration, logger *zap.Logger, r xmetrics.Registry) {
	if !c.Enabled() {
		logger.Info("ops server disabled")
		return
	}

	s := server.New(server.Options{
		Name:    "ops",
		Address: c.Address,
		Handler: ops.NewHandler(ops.Options{
			Gatherer: r,
			Logger:   logger,
			MemInfo:  c.MemInfo,
		}),
		Logger: logger,
	})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return s.Start(nil)
		},
		OnStop: func(context.Context) error {
			return s.Close()
		},
	})
}
