// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import "time"

const (
	// DefaultServerName is the name used in logs and metrics when none is supplied
	DefaultServerName = "greeter"

	// DefaultHost is the interface the primary server binds to
	DefaultHost = "127.0.0.1"

	// DefaultPort is the port the primary server binds to
	DefaultPort = 3000

	// DefaultReadHeaderTimeout bounds the time a client may take to send request headers
	DefaultReadHeaderTimeout time.Duration = 10 * time.Second

	// ConfigurationKey is the configuration key under which the primary server is configured
	ConfigurationKey = "server"
)
