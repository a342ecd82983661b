// ABOUTME: Validation for AgentTracker messages on top of the generated bindings
// ABOUTME: Enforces the exactly-one-selector rule both in memory and on the wire

package rpc

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

const (
	projectIDFieldNumber protowire.Number = 1
	agentIDFieldNumber   protowire.Number = 2
)

// Request validation errors
var (
	ErrNoSelector        = errors.New("exactly one of project_id or agent_id must be set")
	ErrMultipleSelectors = errors.New("only one of project_id or agent_id may be set")
)

// Validate checks that the request selects either a project or an agent.
func (x *GetConnectedAgentsRequest) Validate() error {
	switch x.GetRequest().(type) {
	case *GetConnectedAgentsRequest_ProjectId, *GetConnectedAgentsRequest_AgentId:
		return nil
	default:
		return ErrNoSelector
	}
}

// ValidateWire inspects the encoded form of a GetConnectedAgentsRequest before it
// is decoded. Proto3 keeps the last oneof member it sees, so bytes carrying both
// selectors (or one selector twice) would otherwise decode without complaint.
func (*GetConnectedAgentsRequest) ValidateWire(b []byte) error {
	var projectSeen, agentSeen int
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("reading tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case projectIDFieldNumber:
			projectSeen++
		case agentIDFieldNumber:
			agentSeen++
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return fmt.Errorf("reading field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	switch {
	case projectSeen > 0 && agentSeen > 0:
		return ErrMultipleSelectors
	case projectSeen > 1:
		return fmt.Errorf("%w: project_id repeated", ErrMultipleSelectors)
	case agentSeen > 1:
		return fmt.Errorf("%w: agent_id repeated", ErrMultipleSelectors)
	}
	return nil
}

// ParseGetConnectedAgentsRequest decodes b into a request that is guaranteed to
// carry exactly one selector. No message is returned on failure.
func ParseGetConnectedAgentsRequest(b []byte) (*GetConnectedAgentsRequest, error) {
	req := &GetConnectedAgentsRequest{}
	if err := req.ValidateWire(b); err != nil {
		return nil, err
	}
	if err := proto.Unmarshal(b, req); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks every returned record identifies its agent.
func (x *GetConnectedAgentsResponse) Validate() error {
	for i, info := range x.GetAgents() {
		if info == nil {
			return fmt.Errorf("agents[%d]: missing record", i)
		}
		if info.GetAgentId() <= 0 {
			return fmt.Errorf("agents[%d]: invalid agent_id %d", i, info.GetAgentId())
		}
	}
	return nil
}
