// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"log"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// NewErrorLog creates a new log.Logger appropriate for http.Server.ErrorLog.  Output is
// written to the zap logger at error level.
func NewErrorLog(logger *zap.Logger, serverName string) *log.Logger {
	errorLog, err := zap.NewStdLogAt(logger.With(zap.String("server", serverName)), zap.ErrorLevel)
	if err != nil {
		// only possible with an invalid level
		return zap.NewStdLog(logger)
	}

	return errorLog
}

// NewConnStateLogger produces a function appropriate for http.Server.ConnState.
// The returned function logs a debug statement for each state change.
func NewConnStateLogger(logger *zap.Logger, serverName string) func(net.Conn, http.ConnState) {
	logger = logger.With(zap.String("server", serverName))
	return func(connection net.Conn, connectionState http.ConnState) {
		logger.Debug(
			"connection state change",
			zap.String("localAddress", connection.LocalAddr().String()),
			zap.String("remoteAddress", connection.RemoteAddr().String()),
			zap.Stringer("state", connectionState),
		)
	}
}
