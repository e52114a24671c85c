// Package client talks to the policydesk admin gRPC API on behalf of the CLI.
//
// # Overview
//
// Client is the transport-agnostic contract the CLI depends on. GRPCClient
// implements it over the JSON-coded PartnerAdmin service: it manages the
// connection, stamps every call with a request id through an interceptor,
// bounds each call with the configured timeout and maps gRPC status codes to
// sentinel errors.
//
// # Error Handling
//
// Callers match conditions with errors.Is or errors.As:
//   - ErrUnavailable when the server cannot be reached or times out.
//   - common.ErrorNotFound when the partner does not exist.
//   - validation.Errors when the server rejected input field by field.
package client
