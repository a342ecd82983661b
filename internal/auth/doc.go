// Package auth authenticates callers of kas-gateway.
//
// Callers present an HS256 JWT as "authorization: Bearer <token>", in gRPC
// metadata or in the HTTP Authorization header. The token's "sub" claim names
// the principal, which handlers read back with FromContext.
//
// When no jwt_secret is configured the gateway installs the NoAuth variants,
// which attach an anonymous principal to every request instead.
package auth
