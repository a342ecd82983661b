// ABOUTME: gRPC server construction and service registration for the gateway
// ABOUTME: Chains logging, error reporting, auth, and validation interceptors over the validating codec

package gateway

import (
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"github.com/2389/kas-gateway/internal/auth"
	"github.com/2389/kas-gateway/internal/grpctool"
	"github.com/2389/kas-gateway/internal/notifications"
	registrarrpc "github.com/2389/kas-gateway/proto/agentregistrar/rpc"
	trackerrpc "github.com/2389/kas-gateway/proto/agenttracker/rpc"
	notificationsrpc "github.com/2389/kas-gateway/proto/notifications/rpc"
)

// newGRPCServer creates the gRPC server. A nil verifier disables authentication.
func newGRPCServer(verifier *auth.JWTVerifier, logger *slog.Logger) *grpc.Server {
	var authInterceptor grpc.UnaryServerInterceptor
	if verifier != nil {
		authInterceptor = auth.UnaryInterceptor(verifier, logger.With("component", "auth"))
		logger.Info("auth interceptor enabled (JWT)")
	} else {
		authInterceptor = auth.NoAuthUnaryInterceptor()
		logger.Warn("auth disabled - no jwt_secret configured")
	}

	rpcLogger := logger.With("component", "grpc")
	return grpc.NewServer(
		grpc.ForceServerCodec(grpctool.Codec{}),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    15 * time.Second,
			Timeout: 5 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(
			grpctool.UnaryServerLoggingInterceptor(rpcLogger),
			grpctool.UnaryServerErrorReporterInterceptor(grpctool.LogErrorReporter{Logger: rpcLogger}),
			authInterceptor,
			grpctool.UnaryServerValidatingInterceptor,
		),
	)
}

// registerGRPCServices registers the AgentTracker, Notifications, and AgentRegistrar services.
func (g *Gateway) registerGRPCServices(logger *slog.Logger) {
	trackerrpc.RegisterAgentTrackerServer(g.grpcServer, g.trackerSvc)
	notificationsrpc.RegisterNotificationsServer(g.grpcServer,
		notifications.NewService(g.publisher(), logger.With("component", "notifications")))
	registrarrpc.RegisterAgentRegistrarServer(g.grpcServer, g.registrar)
}
