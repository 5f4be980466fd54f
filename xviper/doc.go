// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper provides customizations on use of viper for configuration loading.

Configuration is layered in the usual viper order: command line flags, then environment
variables, then the configuration file, then defaults.  A missing configuration file is
not an error unless one was explicitly requested.
*/
package xviper
