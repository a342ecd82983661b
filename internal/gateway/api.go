// ABOUTME: HTTP API for querying connected agents and recorded git push events
// ABOUTME: Serves protojson agent listings, a JSON event log, and a live SSE push stream

package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/2389/kas-gateway/internal/auth"
	"github.com/2389/kas-gateway/internal/notifications"
	"github.com/2389/kas-gateway/internal/store"
	trackerrpc "github.com/2389/kas-gateway/proto/agenttracker/rpc"
	notificationsrpc "github.com/2389/kas-gateway/proto/notifications/rpc"
)

const (
	maxEventLimit     = 1000
	sseKeepAlivePause = 30 * time.Second
	sseEventGitPush   = "git_push"
)

var apiJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// GitPushEventJSON is one entry of the git push event log.
type GitPushEventJSON struct {
	ID         string    `json:"id"`
	ProjectID  int64     `json:"project_id"`
	FullPath   string    `json:"full_path"`
	ReceivedAt time.Time `json:"received_at"`
}

// GitPushEventsResponse is the body of GET /api/events/git-push.
type GitPushEventsResponse struct {
	Events []GitPushEventJSON `json:"events"`
}

// registerHTTPAPIRoutes mounts the /api routes behind JWT auth when a secret is configured.
func (g *Gateway) registerHTTPAPIRoutes(mux *http.ServeMux, logger *slog.Logger) {
	authMiddleware := auth.NoAuthHTTPMiddleware()
	if g.jwtVerifier != nil {
		authMiddleware = auth.HTTPAuthMiddleware(g.jwtVerifier, logger.With("component", "http-auth"))
	}

	mux.Handle("/api/agents", authMiddleware(http.HandlerFunc(g.handleListAgents)))
	mux.Handle("/api/events/git-push", authMiddleware(http.HandlerFunc(g.handleListGitPushEvents)))
	mux.Handle("/api/events/git-push/stream", authMiddleware(http.HandlerFunc(g.handleStreamGitPushEvents)))
}

// handleListAgents serves GET /api/agents?project_id=N or ?agent_id=N.
func (g *Gateway) handleListAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	req, err := parseAgentsQuery(r)
	if err != nil {
		g.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := g.trackerSvc.GetConnectedAgents(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		switch status.Code(err) {
		case codes.InvalidArgument:
			code = http.StatusBadRequest
		case codes.Unavailable:
			code = http.StatusServiceUnavailable
		}
		g.sendJSONError(w, code, status.Convert(err).Message())
		return
	}

	body, err := apiJSON.Marshal(resp)
	if err != nil {
		g.sendJSONError(w, http.StatusInternalServerError, "encoding response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// parseAgentsQuery builds a request from exactly one of project_id and agent_id.
func parseAgentsQuery(r *http.Request) (*trackerrpc.GetConnectedAgentsRequest, error) {
	q := r.URL.Query()
	projectRaw, agentRaw := q.Get("project_id"), q.Get("agent_id")

	switch {
	case projectRaw != "" && agentRaw != "":
		return nil, fmt.Errorf("only one of project_id or agent_id may be set")
	case projectRaw != "":
		id, err := parsePositiveID("project_id", projectRaw)
		if err != nil {
			return nil, err
		}
		return &trackerrpc.GetConnectedAgentsRequest{
			Request: &trackerrpc.GetConnectedAgentsRequest_ProjectId{ProjectId: id},
		}, nil
	case agentRaw != "":
		id, err := parsePositiveID("agent_id", agentRaw)
		if err != nil {
			return nil, err
		}
		return &trackerrpc.GetConnectedAgentsRequest{
			Request: &trackerrpc.GetConnectedAgentsRequest_AgentId{AgentId: id},
		}, nil
	default:
		return nil, fmt.Errorf("project_id or agent_id query param required")
	}
}

func parsePositiveID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

// handleListGitPushEvents serves GET /api/events/git-push?project_id=&limit=.
func (g *Gateway) handleListGitPushEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var projectID int64
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		id, err := parsePositiveID("project_id", raw)
		if err != nil {
			g.sendJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		projectID = id
	}

	limit := store.DefaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxEventLimit {
			g.sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxEventLimit))
			return
		}
		limit = n
	}

	events, err := g.store.ListGitPushEvents(r.Context(), projectID, limit)
	if err != nil {
		g.logger.Error("listing git push events", "error", err)
		g.sendJSONError(w, http.StatusServiceUnavailable, "failed to list events")
		return
	}

	resp := GitPushEventsResponse{Events: make([]GitPushEventJSON, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, GitPushEventJSON{
			ID:         e.ID,
			ProjectID:  e.ProjectID,
			FullPath:   e.FullPath,
			ReceivedAt: e.ReceivedAt,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleStreamGitPushEvents streams live pushes as server-sent events until the
// client disconnects or the gateway shuts down. project_id narrows the stream.
func (g *Gateway) handleStreamGitPushEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var projectID int64
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		id, err := parsePositiveID("project_id", raw)
		if err != nil {
			g.sendJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		projectID = id
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		g.logger.Error("streaming not supported")
		g.sendJSONError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	events, _ := g.broadcaster.Subscribe(ctx, notifications.GitPushEventsChannel)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(sseKeepAlivePause)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			_, _ = fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg, ok := <-events:
			if !ok {
				return
			}
			project, isProject := msg.(*notificationsrpc.Project)
			if !isProject || (projectID != 0 && project.GetId() != projectID) {
				continue
			}
			g.writeSSEEvent(w, sseEventGitPush, project)
			flusher.Flush()
		}
	}
}

// writeSSEEvent writes a single SSE event with a protojson payload.
func (g *Gateway) writeSSEEvent(w http.ResponseWriter, event string, data proto.Message) {
	dataJSON, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(data)
	if err != nil {
		g.logger.Error("failed to marshal SSE data", "error", err)
		return
	}

	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", dataJSON)
}

// sendJSONError writes a JSON error response.
func (g *Gateway) sendJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
