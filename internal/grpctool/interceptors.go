// ABOUTME: Unary gRPC interceptors for message validation, error reporting, and logging
// ABOUTME: Server side rejects bad requests, client side rejects bad responses

package grpctool

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Validator is implemented by messages that can check their own contents.
type Validator interface {
	Validate() error
}

// ServerErrorReporter receives handler errors that did not map to a known code.
type ServerErrorReporter interface {
	Report(ctx context.Context, fullMethod string, err error)
}

// UnaryServerValidatingInterceptor rejects requests that fail Validate with InvalidArgument.
func UnaryServerValidatingInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
		}
	}
	return handler(ctx, req)
}

// UnaryClientValidatingInterceptor rejects responses that fail Validate with InvalidArgument.
func UnaryClientValidatingInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
		return err
	}
	if v, ok := reply.(Validator); ok {
		if err := v.Validate(); err != nil {
			return status.Errorf(codes.InvalidArgument, "invalid server response: %v", err)
		}
	}
	return nil
}

// UnaryServerErrorReporterInterceptor hands codes.Unknown errors to reporter.
// The error is returned to the caller unchanged.
func UnaryServerErrorReporterInterceptor(reporter ServerErrorReporter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil && status.Code(err) == codes.Unknown {
			reporter.Report(ctx, info.FullMethod, err)
		}
		return resp, err
	}
}

// LogErrorReporter reports errors to a logger.
type LogErrorReporter struct {
	Logger *slog.Logger
}

// Report logs err at error level.
func (r LogErrorReporter) Report(_ context.Context, fullMethod string, err error) {
	r.Logger.Error("unexpected handler error", "method", fullMethod, "error", err)
}

// UnaryServerLoggingInterceptor logs each call with its status code and duration.
func UnaryServerLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("rpc",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}
