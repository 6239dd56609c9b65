// Package connection provides the HTTP client for platform-cli.
//
// The client wraps net/http with the conventions of the platform API:
// JSON request and response bodies, a fixed request timeout, and error
// responses carrying a detail message. GetText covers the plain-text
// Prometheus exposition endpoint.
//
// Responses are parsed with ParseResponse, which surfaces the API's
// detail message when a request fails.
package connection
