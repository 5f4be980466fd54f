// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server runs the greeting server.

A Server starts out Unbound.  Start binds its listener, reports the bound address through a
callback and serves requests in the background.  Once Listening, a Server stays Listening: Close
drops the listener and every open connection, but the Server cannot be started again.
*/
package server
