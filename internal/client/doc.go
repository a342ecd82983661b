// Package client dials a kas gateway and calls its AgentTracker,
// Notifications and AgentRegistrar services.
//
// Failures of the connection itself (unreachable server, deadline exceeded,
// cancellation) are returned as *TransportError so callers can tell them
// apart from errors the server produced or responses that failed to decode:
//
//	c, err := client.Dial(ctx, "localhost:50051", client.Options{Token: token})
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	_, err = c.GitPushEvent(ctx, &rpc.Project{Id: 1, FullPath: "group/project"})
//	if client.IsTransportError(err) {
//		// retry later
//	}
package client
