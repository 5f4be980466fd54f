// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Configuration holds the externally configurable options for a server
type Configuration struct {
	// Host is the interface to bind to.  If unset, DefaultHost is used.
	Host string `mapstructure:"host"`

	// Port is the TCP port to bind to.  Zero asks the operating system for any free port.
	Port int `mapstructure:"port"`

	// MaxConnections is the maximum number of concurrent connections.  Zero or less means unlimited.
	MaxConnections int `mapstructure:"maxConnections"`

	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	DisableKeepAlives bool          `mapstructure:"disableKeepAlives"`
}

// Defaults returns the configuration keys and default values for a server, relative to ConfigurationKey.
// Every field of Configuration has an entry, since viper only consults the environment for known keys.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		ConfigurationKey + ".host":              DefaultHost,
		ConfigurationKey + ".port":              DefaultPort,
		ConfigurationKey + ".maxConnections":    0,
		ConfigurationKey + ".readHeaderTimeout": DefaultReadHeaderTimeout,
		ConfigurationKey + ".idleTimeout":       time.Duration(0),
		ConfigurationKey + ".disableKeepAlives": false,
	}
}

func (c Configuration) host() string {
	if len(c.Host) > 0 {
		return c.Host
	}

	return DefaultHost
}

// Address returns the host:port this configuration binds to
func (c Configuration) Address() string {
	return net.JoinHostPort(c.host(), strconv.Itoa(c.Port))
}

// Validate checks that this configuration describes a bindable address
func (c Configuration) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}

	if c.ReadHeaderTimeout < 0 || c.IdleTimeout < 0 {
		return fmt.Errorf("invalid timeouts: readHeaderTimeout=%s idleTimeout=%s", c.ReadHeaderTimeout, c.IdleTimeout)
	}

	return nil
}

// Options produces the server Options for this configuration.  Handler, Logger and metrics are left
// for the caller to set.
func (c Configuration) Options(name string) Options {
	return Options{
		Name:              name,
		Host:              c.host(),
		Address:           c.Address(),
		MaxConnections:    c.MaxConnections,
		ReadHeaderTimeout: c.ReadHeaderTimeout,
		IdleTimeout:       c.IdleTimeout,
		DisableKeepAlives: c.DisableKeepAlives,
	}
}
