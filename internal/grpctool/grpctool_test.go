// ABOUTME: Tests for the validating codec and unary interceptors over an in-memory connection
// ABOUTME: Drives a stub AgentTracker server to exercise both server and client checks

package grpctool

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/2389/kas-gateway/proto/agenttracker"
	"github.com/2389/kas-gateway/proto/agenttracker/rpc"
)

type stubTracker struct {
	rpc.UnimplementedAgentTrackerServer
	fn func(context.Context, *rpc.GetConnectedAgentsRequest) (*rpc.GetConnectedAgentsResponse, error)
}

func (s *stubTracker) GetConnectedAgents(ctx context.Context, req *rpc.GetConnectedAgentsRequest) (*rpc.GetConnectedAgentsResponse, error) {
	return s.fn(ctx, req)
}

type recordingReporter struct {
	mu      sync.Mutex
	methods []string
}

func (r *recordingReporter) Report(_ context.Context, fullMethod string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods = append(r.methods, fullMethod)
}

// rawCodec sends and receives pre-encoded bytes.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error)      { return *(v.(*[]byte)), nil }
func (rawCodec) Unmarshal(data []byte, v any) error { *(v.(*[]byte)) = bytes.Clone(data); return nil }
func (rawCodec) Name() string                       { return CodecName }

func startServer(t *testing.T, srv rpc.AgentTrackerServer, opts ...grpc.ServerOption) *grpc.ClientConn {
	t.Helper()
	lis := NewDialListener()
	opts = append([]grpc.ServerOption{grpc.ForceServerCodec(Codec{})}, opts...)
	server := grpc.NewServer(opts...)
	rpc.RegisterAgentTrackerServer(server, srv)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(lis.DialContext),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
		grpc.WithChainUnaryInterceptor(UnaryClientValidatingInterceptor),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func echoAgent(_ context.Context, req *rpc.GetConnectedAgentsRequest) (*rpc.GetConnectedAgentsResponse, error) {
	return &rpc.GetConnectedAgentsResponse{
		Agents: []*agenttracker.ConnectedAgentInfo{{AgentId: req.GetAgentId(), ConnectionId: 1}},
	}, nil
}

func TestCodec_RejectsBothSelectors(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 100)
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)

	var req rpc.GetConnectedAgentsRequest
	err := Codec{}.Unmarshal(b, &req)
	require.Error(t, err)
	assert.ErrorIs(t, err, rpc.ErrMultipleSelectors)
	assert.Contains(t, err.Error(), "gitlab.agent.agent_tracker.rpc.GetConnectedAgentsRequest")
}

func TestCodec_NonProtoMessage(t *testing.T) {
	_, err := Codec{}.Marshal(struct{}{})
	assert.Error(t, err)
	assert.Error(t, Codec{}.Unmarshal(nil, &struct{}{}))
	assert.Equal(t, "proto", Codec{}.Name())
}

func TestServer_RoundTrip(t *testing.T) {
	conn := startServer(t, &stubTracker{fn: echoAgent}, grpc.ChainUnaryInterceptor(UnaryServerValidatingInterceptor))
	client := rpc.NewAgentTrackerClient(conn)

	resp, err := client.GetConnectedAgents(context.Background(), &rpc.GetConnectedAgentsRequest{
		Request: &rpc.GetConnectedAgentsRequest_AgentId{AgentId: 7},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetAgents(), 1)
	assert.Equal(t, int64(7), resp.GetAgents()[0].GetAgentId())
}

func TestServer_RejectsBothSelectorsOnWire(t *testing.T) {
	called := false
	conn := startServer(t, &stubTracker{fn: func(ctx context.Context, req *rpc.GetConnectedAgentsRequest) (*rpc.GetConnectedAgentsResponse, error) {
		called = true
		return echoAgent(ctx, req)
	}})

	req := protowire.AppendTag(nil, 1, protowire.VarintType)
	req = protowire.AppendVarint(req, 100)
	req = protowire.AppendTag(req, 2, protowire.VarintType)
	req = protowire.AppendVarint(req, 1)
	var resp []byte

	err := conn.Invoke(context.Background(), rpc.AgentTracker_GetConnectedAgents_FullMethodName, &req, &resp, grpc.ForceCodec(rawCodec{}))
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, err.Error(), rpc.ErrMultipleSelectors.Error())
	assert.False(t, called)
}

func TestUnaryServerValidatingInterceptor(t *testing.T) {
	conn := startServer(t, &stubTracker{fn: echoAgent}, grpc.ChainUnaryInterceptor(UnaryServerValidatingInterceptor))
	client := rpc.NewAgentTrackerClient(conn)

	_, err := client.GetConnectedAgents(context.Background(), &rpc.GetConnectedAgentsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "invalid request")
}

func TestUnaryClientValidatingInterceptor(t *testing.T) {
	conn := startServer(t, &stubTracker{fn: func(context.Context, *rpc.GetConnectedAgentsRequest) (*rpc.GetConnectedAgentsResponse, error) {
		return &rpc.GetConnectedAgentsResponse{
			Agents: []*agenttracker.ConnectedAgentInfo{{AgentId: 0}},
		}, nil
	}})
	client := rpc.NewAgentTrackerClient(conn)

	_, err := client.GetConnectedAgents(context.Background(), &rpc.GetConnectedAgentsRequest{
		Request: &rpc.GetConnectedAgentsRequest_ProjectId{ProjectId: 1},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "invalid server response: ")
}

func TestUnaryServerErrorReporterInterceptor(t *testing.T) {
	tests := []struct {
		name         string
		handlerError error
		expectReport bool
	}{
		{name: "unknown error", handlerError: status.Error(codes.Unknown, "some unknown error"), expectReport: true},
		{name: "plain error", handlerError: errors.New("plain"), expectReport: true},
		{name: "canceled error", handlerError: status.Error(codes.Canceled, "some canceled error")},
		{name: "no error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			handler := func(context.Context, any) (any, error) {
				return struct{}{}, tt.handlerError
			}

			intercept := UnaryServerErrorReporterInterceptor(reporter)
			_, err := intercept(context.Background(), struct{}{}, &grpc.UnaryServerInfo{FullMethod: "some-method"}, handler)

			assert.ErrorIs(t, err, tt.handlerError)
			if tt.expectReport {
				assert.Equal(t, []string{"some-method"}, reporter.methods)
			} else {
				assert.Empty(t, reporter.methods)
			}
		})
	}
}

func TestLogErrorReporter(t *testing.T) {
	var buf bytes.Buffer
	r := LogErrorReporter{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	r.Report(context.Background(), "/svc/Method", errors.New("boom"))
	assert.Contains(t, buf.String(), "method=/svc/Method")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestUnaryServerLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	intercept := UnaryServerLoggingInterceptor(logger)
	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "nope")
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "method=/svc/Method")
	assert.Contains(t, buf.String(), "code=NotFound")

	buf.Reset()
	quiet := UnaryServerLoggingInterceptor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err = quiet(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Empty(t, buf.String())
}
