// Package client talks to the FinSync backend.
//
// # Overview
//
// Client is the transport-agnostic contract used by the services: Login,
// Register, UploadImage and Ping. HTTPClient implements it with JSON over
// HTTP. When a bearer token is available from the configured TokenSource it
// is attached to every request, and every request carries a fresh
// X-Request-ID for log correlation.
//
// # Error Handling
//
// Network failures wrap ErrUnavailable. Non-2xx responses are returned as
// *APIError carrying the status code and the server's message, if any; a
// 401 additionally matches ErrUnauthorized via errors.Is.
//
// No local cancellation or retry is done beyond the context passed in and
// the http.Client timeout.
package client
