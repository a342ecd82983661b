// ABOUTME: gRPC client for the gateway's tracker, notification, and registrar services
// ABOUTME: Installs the validating codec, bearer credentials, and transport error wrapping

package client

import (
	"context"
	"crypto/tls"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/2389/kas-gateway/internal/grpctool"
	registrarrpc "github.com/2389/kas-gateway/proto/agentregistrar/rpc"
	"github.com/2389/kas-gateway/proto/agenttracker"
	trackerrpc "github.com/2389/kas-gateway/proto/agenttracker/rpc"
	notificationsrpc "github.com/2389/kas-gateway/proto/notifications/rpc"
)

// Options configures Dial.
type Options struct {
	// Token is sent as "authorization: Bearer <token>" when non-empty.
	Token string
	// TLS enables transport security. Nil means plaintext.
	TLS *tls.Config
	// DialOptions are appended after the defaults.
	DialOptions []grpc.DialOption
}

// Client calls the gateway services over one connection.
type Client struct {
	conn          *grpc.ClientConn
	tracker       trackerrpc.AgentTrackerClient
	notifications notificationsrpc.NotificationsClient
	registrar     registrarrpc.AgentRegistrarClient
}

// Dial creates a client for addr. The connection is established lazily on the first call.
func Dial(ctx context.Context, addr string, opts Options) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	creds := insecure.NewCredentials()
	if opts.TLS != nil {
		creds = credentials.NewTLS(opts.TLS)
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(grpctool.Codec{})),
		grpc.WithChainUnaryInterceptor(
			unaryTransportErrorInterceptor,
			grpctool.UnaryClientValidatingInterceptor,
		),
	}
	if opts.Token != "" {
		dialOpts = append(dialOpts, grpc.WithPerRPCCredentials(bearerToken{
			token:         opts.Token,
			allowInsecure: opts.TLS == nil,
		}))
	}
	dialOpts = append(dialOpts, opts.DialOptions...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating client for %s: %w", addr, err)
	}
	return New(conn), nil
}

// New wraps an existing connection.
func New(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:          conn,
		tracker:       trackerrpc.NewAgentTrackerClient(conn),
		notifications: notificationsrpc.NewNotificationsClient(conn),
		registrar:     registrarrpc.NewAgentRegistrarClient(conn),
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ConnectedAgentsByProject lists the live connections of agents in a project.
func (c *Client) ConnectedAgentsByProject(ctx context.Context, projectID int64) ([]*agenttracker.ConnectedAgentInfo, error) {
	resp, err := c.tracker.GetConnectedAgents(ctx, &trackerrpc.GetConnectedAgentsRequest{
		Request: &trackerrpc.GetConnectedAgentsRequest_ProjectId{ProjectId: projectID},
	})
	if err != nil {
		return nil, err
	}
	return resp.GetAgents(), nil
}

// ConnectedAgentsByAgent lists the live connections of one agent.
func (c *Client) ConnectedAgentsByAgent(ctx context.Context, agentID int64) ([]*agenttracker.ConnectedAgentInfo, error) {
	resp, err := c.tracker.GetConnectedAgents(ctx, &trackerrpc.GetConnectedAgentsRequest{
		Request: &trackerrpc.GetConnectedAgentsRequest_AgentId{AgentId: agentID},
	})
	if err != nil {
		return nil, err
	}
	return resp.GetAgents(), nil
}

// GitPushEvent notifies the gateway of a push to project.
func (c *Client) GitPushEvent(ctx context.Context, project *notificationsrpc.Project) (*notificationsrpc.GitPushEventResponse, error) {
	return c.notifications.GitPushEvent(ctx, &notificationsrpc.GitPushEventRequest{Project: project})
}

// Register announces a live agent connection.
func (c *Client) Register(ctx context.Context, req *registrarrpc.RegisterRequest) error {
	_, err := c.registrar.Register(ctx, req)
	return err
}

// Unregister withdraws an agent connection.
func (c *Client) Unregister(ctx context.Context, req *registrarrpc.UnregisterRequest) error {
	_, err := c.registrar.Unregister(ctx, req)
	return err
}

// bearerToken implements credentials.PerRPCCredentials.
type bearerToken struct {
	token         string
	allowInsecure bool
}

func (b bearerToken) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}

func (b bearerToken) RequireTransportSecurity() bool {
	return !b.allowInsecure
}
