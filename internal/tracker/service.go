// ABOUTME: AgentTracker gRPC service answering connected agent queries
// ABOUTME: Maps query failures to Unavailable and missing selectors to InvalidArgument

package tracker

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/2389/kas-gateway/proto/agenttracker"
	"github.com/2389/kas-gateway/proto/agenttracker/rpc"
)

// Service implements rpc.AgentTrackerServer on top of a Querier.
type Service struct {
	rpc.UnimplementedAgentTrackerServer
	querier Querier
	logger  *slog.Logger
}

// NewService creates the AgentTracker service.
func NewService(querier Querier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		querier: querier,
		logger:  logger,
	}
}

// GetConnectedAgents lists the live connections for an agent or a project.
// The result list is never nil.
func (s *Service) GetConnectedAgents(ctx context.Context, req *rpc.GetConnectedAgentsRequest) (*rpc.GetConnectedAgentsResponse, error) {
	infos := ConnectedAgentInfoCollector{}
	switch v := req.GetRequest().(type) {
	case *rpc.GetConnectedAgentsRequest_AgentId:
		if err := s.querier.GetConnectionsByAgentID(ctx, v.AgentId, infos.Collect); err != nil {
			s.logger.Error("GetConnectionsByAgentID failed", "agent_id", v.AgentId, "error", err)
			return nil, status.Error(codes.Unavailable, "GetConnectionsByAgentID() failed")
		}
	case *rpc.GetConnectedAgentsRequest_ProjectId:
		if err := s.querier.GetConnectionsByProjectID(ctx, v.ProjectId, infos.Collect); err != nil {
			s.logger.Error("GetConnectionsByProjectID failed", "project_id", v.ProjectId, "error", err)
			return nil, status.Error(codes.Unavailable, "GetConnectionsByProjectID() failed")
		}
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unexpected field type: %T", req.GetRequest())
	}
	return &rpc.GetConnectedAgentsResponse{
		Agents: []*agenttracker.ConnectedAgentInfo(infos),
	}, nil
}
