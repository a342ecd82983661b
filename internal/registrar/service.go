// ABOUTME: AgentRegistrar gRPC service recording agent connections in the tracker
// ABOUTME: Skips repeated identical registrations through a TTL dedupe cache

package registrar

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/2389/kas-gateway/internal/dedupe"
	"github.com/2389/kas-gateway/internal/tracker"
	"github.com/2389/kas-gateway/proto/agentregistrar/rpc"
	"github.com/2389/kas-gateway/proto/agenttracker"
)

// Tracker is the subset of the connection tracker the registrar needs.
type Tracker interface {
	tracker.Registerer
	GetConnectionsByAgentID(ctx context.Context, agentID int64, cb tracker.ConnectedAgentInfoCallback) error
}

// Service implements rpc.AgentRegistrarServer.
type Service struct {
	rpc.UnimplementedAgentRegistrarServer
	tracker Tracker
	seen    *dedupe.Cache[string]
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates the registrar. Registrations identical to one seen less
// than dedupeTTL ago are not written again. Call Close to release the cache.
func NewService(t Tracker, dedupeTTL time.Duration, dedupeMaxEntries int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tracker: t,
		seen:    dedupe.New[string](dedupeTTL, dedupeMaxEntries),
		logger:  logger,
		now:     time.Now,
	}
}

// Close stops the dedupe cache cleanup.
func (s *Service) Close() {
	s.seen.Close()
}

// Register records the connection identified by the request's pod ID.
func (s *Service) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {
	key := connectionKey(req.GetAgentId(), req.GetPodId())
	sum, err := contentHash(req)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "hashing request: %v", err)
	}
	if prev, ok := s.seen.Get(key); ok && prev == sum {
		return &rpc.RegisterResponse{}, nil
	}

	connectedAt, err := s.connectedAt(ctx, req)
	if err != nil {
		s.logger.Error("looking up existing connection failed", "agent_id", req.GetAgentId(), "pod_id", req.GetPodId(), "error", err)
		return nil, status.Error(codes.Unavailable, "failed to register agent")
	}

	info := &agenttracker.ConnectedAgentInfo{
		AgentMeta:    req.GetAgentMeta(),
		ConnectedAt:  connectedAt,
		ConnectionId: req.GetPodId(),
		AgentId:      req.GetAgentId(),
		ProjectId:    req.GetProjectId(),
	}
	if err := s.tracker.RegisterConnection(ctx, info); err != nil {
		s.logger.Error("RegisterConnection failed", "agent_id", req.GetAgentId(), "pod_id", req.GetPodId(), "error", err)
		return nil, status.Error(codes.Unavailable, "failed to register agent")
	}

	s.seen.Put(key, sum)
	s.logger.Debug("agent registered", "agent_id", req.GetAgentId(), "project_id", req.GetProjectId(), "pod_id", req.GetPodId())
	return &rpc.RegisterResponse{}, nil
}

// Unregister removes the connection and forgets its dedupe entry.
func (s *Service) Unregister(ctx context.Context, req *rpc.UnregisterRequest) (*rpc.UnregisterResponse, error) {
	s.seen.Delete(connectionKey(req.GetAgentId(), req.GetPodId()))

	info := &agenttracker.ConnectedAgentInfo{
		ConnectionId: req.GetPodId(),
		AgentId:      req.GetAgentId(),
		ProjectId:    req.GetProjectId(),
	}
	if err := s.tracker.UnregisterConnection(ctx, info); err != nil {
		s.logger.Error("UnregisterConnection failed", "agent_id", req.GetAgentId(), "pod_id", req.GetPodId(), "error", err)
		return nil, status.Error(codes.Unavailable, "failed to unregister agent")
	}
	s.logger.Debug("agent unregistered", "agent_id", req.GetAgentId(), "project_id", req.GetProjectId(), "pod_id", req.GetPodId())
	return &rpc.UnregisterResponse{}, nil
}

// connectedAt keeps the original connection time when the pod is already tracked.
func (s *Service) connectedAt(ctx context.Context, req *rpc.RegisterRequest) (*timestamppb.Timestamp, error) {
	var found *timestamppb.Timestamp
	err := s.tracker.GetConnectionsByAgentID(ctx, req.GetAgentId(), func(info *agenttracker.ConnectedAgentInfo) (bool, error) {
		if info.GetConnectionId() == req.GetPodId() && info.GetConnectedAt() != nil {
			found = info.GetConnectedAt()
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		found = timestamppb.New(s.now().UTC())
	}
	return found, nil
}

func connectionKey(agentID, podID int64) string {
	return fmt.Sprintf("%d/%d", agentID, podID)
}

func contentHash(req *rpc.RegisterRequest) (string, error) {
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
