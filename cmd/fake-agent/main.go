// ABOUTME: Minimal fake agent for E2E testing: registers a connection with the gateway and keeps it fresh.
// ABOUTME: Usage: fake-agent [-addr localhost:50051] [-agent 1] [-project 2] [-every 30s]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/2389/kas-gateway/internal/client"
	registrarrpc "github.com/2389/kas-gateway/proto/agentregistrar/rpc"
	"github.com/2389/kas-gateway/proto/agenttracker"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC server address")
	agentID := flag.Int64("agent", 1, "Agent ID")
	projectID := flag.Int64("project", 1, "Project ID the agent is configured for")
	podID := flag.Int64("pod", 0, "Pod ID (random when zero)")
	every := flag.Duration("every", 30*time.Second, "Re-registration interval")
	token := flag.String("token", os.Getenv("KAS_TOKEN"), "Bearer token")
	flag.Parse()

	if *podID == 0 {
		*podID = rand.Int64N(1<<40) + 1
	}

	if err := run(*addr, *token, *every, &registrarrpc.RegisterRequest{
		AgentMeta: &agenttracker.AgentMeta{
			Version:      "fake-agent",
			CommitId:     "dev",
			PodNamespace: "e2e",
			PodName:      fmt.Sprintf("fake-agent-%d", *podID),
		},
		PodId:     *podID,
		AgentId:   *agentID,
		ProjectId: *projectID,
	}); err != nil {
		log.Fatal(err)
	}
}

func run(addr, token string, every time.Duration, req *registrarrpc.RegisterRequest) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	c, err := client.Dial(ctx, addr, client.Options{Token: token})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer c.Close()

	register := func() {
		callCtx, callCancel := context.WithTimeout(ctx, 5*time.Second)
		defer callCancel()
		if err := c.Register(callCtx, req); err != nil {
			log.Printf("register failed: %v", err)
			return
		}
		log.Printf("registered agent=%d project=%d pod=%d", req.AgentId, req.ProjectId, req.PodId)
	}

	register()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			register()
		case <-ctx.Done():
			// Signal context is gone; give the unregister call its own deadline.
			callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer callCancel()
			err := c.Unregister(callCtx, &registrarrpc.UnregisterRequest{
				PodId:     req.PodId,
				AgentId:   req.AgentId,
				ProjectId: req.ProjectId,
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("unregister: %w", err)
			}
			log.Printf("unregistered pod=%d", req.PodId)
			return nil
		}
	}
}
