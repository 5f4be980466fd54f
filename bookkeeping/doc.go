// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package bookkeeping provides access logging middleware for HTTP handlers.
package bookkeeping
