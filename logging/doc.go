// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the process-wide zap logger from configuration.

Logs go to stderr by default.  Standard output is reserved for the single startup
line a server prints once it is listening.
*/
package logging
