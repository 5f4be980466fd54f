// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package ops provides the operations endpoints that run beside the greeting server: Prometheus
metrics and a basic health report.  These are served from their own address, never from the
greeting server.
*/
package ops
