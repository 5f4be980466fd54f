// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics provides configurability for Prometheus-based metrics.  The more general go-kit interfaces
are used where possible.

A Registry is both a Prometheus registry and a go-kit provider.Provider.  Metrics may be preregistered
through Options, which allows label names, buckets and help text to be declared once by the package that
owns the metric.  Other code simply asks the Registry for the metric by name.
*/
package xmetrics
