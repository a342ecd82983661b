// ABOUTME: Client-side subcommands that talk to a running gateway over gRPC
// ABOUTME: token mints a JWT; agents queries the tracker; push sends a git push event

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/2389/kas-gateway/internal/auth"
	"github.com/2389/kas-gateway/internal/client"
	"github.com/2389/kas-gateway/internal/config"
	"github.com/2389/kas-gateway/proto/agenttracker"
	notificationsrpc "github.com/2389/kas-gateway/proto/notifications/rpc"
)

// EnvToken overrides the saved token for client subcommands.
const EnvToken = "KAS_TOKEN"

const rpcTimeout = 10 * time.Second

// tokenPath is the file next to the config where `token --save` writes.
func tokenPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "token")
}

// resolveToken picks the bearer token: flag, then $KAS_TOKEN, then the saved token file.
func resolveToken(flagValue, configPath string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvToken); env != "" {
		return env
	}
	data, err := os.ReadFile(tokenPath(configPath))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	principal := fs.String("principal", "", "principal ID to embed as the token subject")
	ttl := fs.Duration("ttl", 30*24*time.Hour, "token lifetime")
	save := fs.Bool("save", false, "write the token next to the config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	*principal = strings.TrimSpace(*principal)
	if *principal == "" {
		return errors.New("--principal is required")
	}
	if *ttl <= 0 {
		return errors.New("--ttl must be positive")
	}

	configPath := config.DefaultPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret not configured in %s", configPath)
	}

	token, err := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret)).Generate(*principal, *ttl)
	if err != nil {
		return fmt.Errorf("generating token: %w", err)
	}

	if *save {
		p := tokenPath(configPath)
		if err := os.WriteFile(p, []byte(token), 0600); err != nil {
			return fmt.Errorf("writing token file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved token to %s\n", p)
	}
	fmt.Println(token)
	return nil
}

// dialGateway loads the config and connects to its gRPC address.
func dialGateway(ctx context.Context, addrFlag, tokenFlag string) (*client.Client, error) {
	configPath := config.DefaultPath()

	addr := addrFlag
	if addr == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		addr = cfg.Server.GRPCAddr
	}
	if addr == "" {
		return nil, errors.New("no gRPC address: set server.grpc_addr or pass --addr")
	}

	return client.Dial(ctx, addr, client.Options{Token: resolveToken(tokenFlag, configPath)})
}

func runAgents(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("agents", flag.ContinueOnError)
	projectID := fs.Int64("project", 0, "list agents connected for this project ID")
	agentID := fs.Int64("agent", 0, "list connections of this agent ID")
	addr := fs.String("addr", "", "gateway gRPC address (defaults to server.grpc_addr)")
	token := fs.String("token", "", "bearer token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*projectID == 0) == (*agentID == 0) {
		return errors.New("exactly one of --project or --agent is required")
	}

	c, err := dialGateway(ctx, *addr, *token)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	var infos []*agenttracker.ConnectedAgentInfo
	if *projectID != 0 {
		infos, err = c.ConnectedAgentsByProject(ctx, *projectID)
	} else {
		infos, err = c.ConnectedAgentsByAgent(ctx, *agentID)
	}
	if err != nil {
		if client.IsTransportError(err) {
			return fmt.Errorf("gateway unreachable: %w", err)
		}
		return err
	}

	printAgents(os.Stdout, infos)
	return nil
}

func printAgents(out io.Writer, infos []*agenttracker.ConnectedAgentInfo) {
	if len(infos) == 0 {
		fmt.Fprintln(out, "no connected agents")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AGENT\tPROJECT\tCONNECTION\tVERSION\tPOD\tCONNECTED")
	for _, info := range infos {
		meta := info.GetAgentMeta()
		pod := meta.GetPodName()
		if ns := meta.GetPodNamespace(); ns != "" {
			pod = ns + "/" + pod
		}
		connectedAt := "-"
		if ts := info.GetConnectedAt(); ts != nil {
			connectedAt = ts.AsTime().Local().Format(time.DateTime)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\n",
			info.GetAgentId(), info.GetProjectId(), info.GetConnectionId(),
			meta.GetVersion(), pod, connectedAt)
	}
	tw.Flush()
}

func runPush(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("push", flag.ContinueOnError)
	projectID := fs.Int64("project", 0, "project ID that received the push")
	path := fs.String("path", "", "project full path, e.g. group/project")
	addr := fs.String("addr", "", "gateway gRPC address (defaults to server.grpc_addr)")
	token := fs.String("token", "", "bearer token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *projectID == 0 {
		return errors.New("--project is required")
	}

	c, err := dialGateway(ctx, *addr, *token)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	if _, err := c.GitPushEvent(ctx, &notificationsrpc.Project{Id: *projectID, FullPath: *path}); err != nil {
		return err
	}
	fmt.Println("git push event sent")
	return nil
}
