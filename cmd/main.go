package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"

	"meet-lab/bridge"
	"meet-lab/broker"
	"meet-lab/contract"
	"meet-lab/internal"
	"meet-lab/observability"
	"meet-lab/repositories"
	"meet-lab/runtime"
	"meet-lab/runtime/workers"
	"meet-lab/services"
	"meet-lab/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer executes before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Message broker (Redis)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	defer func() {
		_ = redisClient.Close()
	}()
	if err = redisClient.Ping(context.Background()).Err(); err != nil {
		// Liveness is independent of publish calls: a broker outage at
		// boot degrades fan-out, it does not block joins and leaves.
		log.Warn("Redis unreachable at startup, event delivery degraded", "error", err)
	}

	// 4. Coordination core
	registry := runtime.NewRegistry()
	meetingRepository := repositories.NewMeetingRepository(db, log)
	roomRepository := repositories.NewRoomRepository(db)
	bridgeClient := bridge.NewClient(config.BridgeBaseURL, config.BridgeTimeout, log)
	publisher := broker.NewRedisPublisher(redisClient, log)

	outbound := make(chan contract.Publication, config.EventBufferSize)
	coordinator := runtime.NewCoordinator(log, registry, roomRepository, bridgeClient, meetingRepository, outbound)
	meetingService := services.NewMeetingService(coordinator)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised background workers
	monitor := observability.NewMonitor(log)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewEventFanout(log, publisher, outbound, config.PublishTimeout),
		workers.NewChannelCapacityWorker(log,
			[]workers.NamedChannel{{Name: "outbound_events", Channel: outbound}},
			monitor, config.MetricInterval),
		workers.NewHeartbeatWorker(log, publisher, monitor, config.HeartbeatInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, func() map[string]any {
			snapshot := monitor.GetLatest()
			return map[string]any{
				"alloc_mem_mb": snapshot.AllocMemMb,
				"num_gc":       snapshot.NumGC,
				"uptime":       snapshot.Uptime,
				"queues":       snapshot.Queues,
			}
		})
		log.Info(fmt.Sprintf("Debug store inspector on http://127.0.0.1:%d/inspect", config.DebugPort))
	}

	// 7. HTTP server
	gin.SetMode(gin.ReleaseMode)
	handler := transport.NewHandler(meetingService, publisher)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: handler.Router(),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info(fmt.Sprintf("HTTP server listening on %s", server.Addr))
		if listenErr := server.ListenAndServe(); listenErr != nil && listenErr != http.ErrServerClosed {
			serverErr <- listenErr
		}
	}()

	select {
	case err = <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown did not complete cleanly", "error", err)
	}
	<-supervisorDone
	return nil
}
