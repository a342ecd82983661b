// ABOUTME: Tests for the Notifications gRPC service
// ABOUTME: Checks the published channel and payload plus the failure error

package notifications

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/2389/kas-gateway/proto/notifications/rpc"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_GitPushEvent_Publishes(t *testing.T) {
	var gotChannel string
	var gotMessage proto.Message
	svc := NewService(PublisherFunc(func(_ context.Context, channel string, message proto.Message) error {
		gotChannel = channel
		gotMessage = message
		return nil
	}), testLogger())

	proj := &rpc.Project{Id: 42, FullPath: "gitlab-org/cluster-integration"}
	resp, err := svc.GitPushEvent(context.Background(), &rpc.GitPushEventRequest{Project: proj})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&rpc.GitPushEventResponse{}, resp, protocmp.Transform()))
	assert.Equal(t, GitPushEventsChannel, gotChannel)
	assert.Empty(t, cmp.Diff(proj, gotMessage, protocmp.Transform()))
}

func TestService_GitPushEvent_PublishFailure(t *testing.T) {
	svc := NewService(PublisherFunc(func(context.Context, string, proto.Message) error {
		return errors.New("store unavailable")
	}), testLogger())

	resp, err := svc.GitPushEvent(context.Background(), &rpc.GitPushEventRequest{Project: &rpc.Project{Id: 1}})
	assert.Nil(t, resp)
	require.EqualError(t, err, "failed to handle git push event")
	assert.Equal(t, codes.Unknown, status.Code(err))
}

func TestService_GitPushEvent_ReachesSubscribers(t *testing.T) {
	b := NewBroadcaster(testLogger())
	defer b.Close()
	ch, _ := b.Subscribe(t.Context(), GitPushEventsChannel)

	svc := NewService(Fanout{b}, testLogger())
	_, err := svc.GitPushEvent(context.Background(), &rpc.GitPushEventRequest{Project: &rpc.Project{Id: 9, FullPath: "a/b"}})
	require.NoError(t, err)

	got := receive(t, ch)
	assert.Equal(t, "a/b", got.(*rpc.Project).GetFullPath())
}
