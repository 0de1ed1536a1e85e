// Package http implements the HTTP transport of the development wallet.
//
// It exposes the JSON-RPC provider endpoint and the version endpoint.
// Request tracing, access logging and panic recovery are handled here before
// calls are validated and delegated to the service layer.
package http
