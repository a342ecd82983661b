// Package grpctool holds the gRPC plumbing shared by the gateway and its
// clients: the validating protobuf codec, unary interceptors for validation,
// error reporting and logging, and an in-memory listener for tests.
package grpctool
