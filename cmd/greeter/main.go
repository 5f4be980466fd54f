// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/greeter/logging"
	"github.com/xmidt-org/greeter/ops"
	"github.com/xmidt-org/greeter/server"
	"github.com/xmidt-org/greeter/xviper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	applicationName = "greeter"

	tracingEnabledKey = "tracing.enabled"
)

func newFlagSet(output io.Writer) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.StringP(xviper.DefaultFileFlag, "f", "", "the fully-qualified path of the configuration file")
	flagSet.String("host", server.DefaultHost, "the interface the greeting server binds to")
	flagSet.Int("port", server.DefaultPort, "the TCP port the greeting server binds to")
	return flagSet
}

// newViper parses the command line and produces the fully configured Viper instance
func newViper(arguments []string, output io.Writer) (*viper.Viper, error) {
	flagSet := newFlagSet(output)
	if err := flagSet.Parse(arguments); err != nil {
		return nil, err
	}

	v, err := xviper.New(
		xviper.StdOptions(applicationName, flagSet),
		xviper.BindPFlag(server.ConfigurationKey+".host", flagSet, "host"),
		xviper.BindPFlag(server.ConfigurationKey+".port", flagSet, "port"),
		xviper.BindConfigFile(flagSet, xviper.DefaultFileFlag),
	)

	if err != nil {
		return nil, err
	}

	xviper.ApplyDefaults(v, server.Defaults())
	xviper.ApplyDefaults(v, logging.Defaults())
	xviper.ApplyDefaults(v, ops.Defaults())
	xviper.ApplyDefaults(v, xviper.Defaults{
		tracingEnabledKey: false,
	})

	if err := xviper.ReadInConfig(v); err != nil {
		return nil, err
	}

	return v, nil
}

// newFxLogger sends fx lifecycle events to the application logger.  Ordinary events are
// debug output, while fx failures are still logged at error.
func newFxLogger(l *zap.Logger) fxevent.Logger {
	fl := &fxevent.ZapLogger{Logger: l}
	fl.UseLogLevel(zapcore.DebugLevel)
	return fl
}

func greeter(arguments []string, stdout, stderr io.Writer, signals <-chan os.Signal) int {
	v, err := newViper(arguments, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "Unable to configure %s: %s\n", applicationName, err)
		return 1
	}

	var logger *zap.Logger
	app := fx.New(
		fx.Supply(v),
		fx.Provide(
			provideConfiguration,
			provideLogger,
			provideRegistry,
			provideHandler,
			providePrimary,
		),
		fx.WithLogger(newFxLogger),
		fx.Invoke(
			startPrimary(stdout),
			startOps,
		),
		fx.Populate(&logger),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(stderr, "Unable to initialize %s: %s\n", applicationName, err)
		return 1
	}

	startCtx, startCancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer startCancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(stderr, "Unable to start %s: %s\n", applicationName, err)
		return 1
	}

	s := server.SignalWait(logger, signals, os.Interrupt, syscall.SIGTERM)
	logger.Info("exiting", zap.Any("signal", s))

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "Error while stopping %s: %s\n", applicationName, err)
		return 1
	}

	return 0
}

func main() {
	signals := make(chan os.Signal, 10)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	os.Exit(greeter(os.Args[1:], os.Stdout, os.Stderr, signals))
}
