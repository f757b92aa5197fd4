package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"consultation-lab/auth"
	"consultation-lab/domain"
	"consultation-lab/domain/event"
	"consultation-lab/eventbus"
	"consultation-lab/internal"
	"consultation-lab/observability"
	"consultation-lab/projection"
	"consultation-lab/repositories"
	"consultation-lab/runtime/workers"
	"consultation-lab/services"
	"consultation-lab/transport"
)

// Exit codes for the console client.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Console error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the messaging client end to end: config, bus, transport,
// services, state store and the heartbeat worker, then prints inbound
// messages until the process is interrupted.
func run() (int, error) {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(log)
	stats := observability.NewConnectionStats()
	tokens := auth.NewTokenProvider(config.AuthToken)

	conn := transport.NewConnection(log, bus, stats, config.BrokerURL, tokens.Factory(), transport.StepBackoff)
	groups := services.NewGroupManager(log, conn, stats)
	api := repositories.NewConsultationClient(log, config.APIBaseURL, config.HTTPTimeout, tokens.Factory())
	service := services.NewMessagingService(log, bus, conn, groups, api, tokens, stats)
	defer service.Disconnect()

	state := projection.NewSessionState(log, service, config.RefetchDelay)
	defer state.Close()

	service.On(event.MessageReceivedName, func(e event.Event) {
		msg := e.(event.MessageReceived).Message
		fmt.Printf("[%s] %s: %s\n", msg.SentAt.Format(time.TimeOnly), msg.SenderID, msg.Content)
	})

	if err := service.Connect(ctx, config.AuthToken); err != nil {
		// Only a configuration problem reaches this branch; transport
		// trouble degrades to request/response mode instead.
		return exitConfig, err
	}
	if service.State() == domain.Connected {
		state.MarkConnected()
	}

	if err := state.LoadSessions(ctx); err != nil {
		return exitRuntime, fmt.Errorf("listing sessions: %w", err)
	}
	snapshot := state.Snapshot()
	log.Info("Sessions loaded", "count", len(snapshot.Sessions))
	if len(snapshot.Sessions) > 0 {
		state.SelectSession(snapshot.Sessions[0])
		service.JoinSession(snapshot.Sessions[0].ID)
		if err := state.LoadMessages(ctx); err != nil {
			log.Warn("Loading history failed", "error", err)
		}
	}

	supervisor := workers.NewSupervisor(log)
	heartbeat := workers.NewHeartbeatWorker(log, conn, stats, config.HeartbeatInterval)
	supervisor.Add(heartbeat).Run(ctx)

	log.Info("Stopping console client")
	return exitOK, nil
}
