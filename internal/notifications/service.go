// ABOUTME: Notifications gRPC service receiving Git push events
// ABOUTME: Publishes the pushed project on GitPushEventsChannel

package notifications

import (
	"context"
	"errors"
	"log/slog"

	"github.com/2389/kas-gateway/proto/notifications/rpc"
)

// errGitPushEvent is returned to callers when publishing fails. It carries no
// status code, so it reaches the client as codes.Unknown.
var errGitPushEvent = errors.New("failed to handle git push event")

// Service implements rpc.NotificationsServer.
type Service struct {
	rpc.UnimplementedNotificationsServer
	publisher Publisher
	logger    *slog.Logger
}

// NewService creates the Notifications service.
func NewService(publisher Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		publisher: publisher,
		logger:    logger,
	}
}

// GitPushEvent publishes the pushed project.
func (s *Service) GitPushEvent(ctx context.Context, req *rpc.GitPushEventRequest) (*rpc.GitPushEventResponse, error) {
	project := req.GetProject()
	if err := s.publisher.Publish(ctx, GitPushEventsChannel, project); err != nil {
		s.logger.Error("failed to publish received git push event",
			"project_id", project.GetId(),
			"full_path", project.GetFullPath(),
			"error", err,
		)
		return nil, errGitPushEvent
	}
	s.logger.Debug("git push event published", "project_id", project.GetId(), "full_path", project.GetFullPath())
	return &rpc.GitPushEventResponse{}, nil
}
