package common

// RequestIDHeaderName is the gRPC metadata key (and HTTP header, see
// chi's middleware.RequestIDHeader) carrying a caller-supplied request id.
const RequestIDHeaderName = "x-request-id"
