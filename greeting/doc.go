// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package greeting provides the http.Handler that answers every request with the same
plain text greeting.

The handler never inspects the request.  Method, path, headers and body have no effect
on the response, so it should be installed directly as a server's handler rather than
behind a router that would clean or redirect unusual paths.
*/
package greeting
