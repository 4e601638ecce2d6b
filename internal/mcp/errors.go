package mcp

import "errors"

// ErrMethodNotFound marks a request for a method the handler does not serve.
// The transport maps it to the matching JSON-RPC error code.
var ErrMethodNotFound = errors.New("method not found")
