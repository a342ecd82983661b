// ABOUTME: In-memory net.Listener for wiring gRPC clients to servers in one process
// ABOUTME: Backed by bufconn, dialed through grpc.WithContextDialer

package grpctool

import (
	"context"
	"net"

	"google.golang.org/grpc/test/bufconn"
)

const dialListenerBufSize = 1024 * 1024

// DialListener is a listener whose DialContext has the shape grpc.WithContextDialer expects.
type DialListener struct {
	*bufconn.Listener
}

// NewDialListener creates an in-memory listener.
func NewDialListener() *DialListener {
	return &DialListener{Listener: bufconn.Listen(dialListenerBufSize)}
}

// DialContext connects to the listener. The address is ignored.
func (l *DialListener) DialContext(ctx context.Context, _ string) (net.Conn, error) {
	return l.Listener.DialContext(ctx)
}
