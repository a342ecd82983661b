// ABOUTME: Validation for AgentRegistrar messages on top of the generated bindings
// ABOUTME: Registration requires agent metadata plus positive agent and project IDs

package rpc

import (
	"errors"
	"fmt"
)

// Registration validation errors
var (
	ErrMissingAgentMeta = errors.New("agent_meta is required")
	ErrInvalidAgentID   = errors.New("agent_id must be positive")
	ErrInvalidProjectID = errors.New("project_id must be positive")
	ErrInvalidPodID     = errors.New("pod_id must be non-zero")
)

// Validate checks a registration request.
func (x *RegisterRequest) Validate() error {
	if x.GetAgentMeta() == nil {
		return ErrMissingAgentMeta
	}
	return validateIDs(x.GetPodId(), x.GetAgentId(), x.GetProjectId())
}

// Validate checks an unregistration request.
func (x *UnregisterRequest) Validate() error {
	return validateIDs(x.GetPodId(), x.GetAgentId(), x.GetProjectId())
}

func validateIDs(podID, agentID, projectID int64) error {
	if agentID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAgentID, agentID)
	}
	if projectID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProjectID, projectID)
	}
	if podID == 0 {
		return ErrInvalidPodID
	}
	return nil
}
