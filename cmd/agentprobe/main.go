// AgentProbe server — provides the HTTP API, manages queue workers, and
// drives eval runs through simulation, evaluation, and aggregation.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/agentprobe/agentprobe/pkg/api"
	"github.com/agentprobe/agentprobe/pkg/cleanup"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/metrics"
	"github.com/agentprobe/agentprobe/pkg/pipeline"
	"github.com/agentprobe/agentprobe/pkg/queue"
	"github.com/agentprobe/agentprobe/pkg/services"
	"github.com/agentprobe/agentprobe/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envFile := flag.String("env-file", ".env", "Path to the environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	podID := resolvePodID()
	slog.Info("Starting AgentProbe", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	// 1. Load and validate configuration
	serverCfg := config.LoadServerConfigFromEnv()
	llmCfg := config.LoadLLMConfigFromEnv()
	queueCfg := config.LoadQueueConfigFromEnv()
	pipelineCfg := config.LoadPipelineConfigFromEnv()
	redisCfg := config.LoadRedisConfigFromEnv()
	retentionCfg := config.LoadRetentionConfigFromEnv()

	if err := config.ValidateLLM(llmCfg); err != nil {
		slog.Error("Invalid LLM configuration", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateQueue(queueCfg); err != nil {
		slog.Error("Invalid queue configuration", "error", err)
		os.Exit(1)
	}
	if err := config.ValidatePipeline(pipelineCfg); err != nil {
		slog.Error("Invalid pipeline configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to PostgreSQL and run migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. LLM client
	llmClient, err := llm.NewClient(*llmCfg)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "provider", llmCfg.Provider, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "provider", llmCfg.Provider)

	// 5. Event pipeline: producer, wake listener, consumers
	m := metrics.Default()
	producer := pipeline.NewProducer(dbClient.DB(), m)

	wakeListener := pipeline.NewWakeListener(dbConfig.DSN())
	if err := wakeListener.Start(ctx); err != nil {
		slog.Error("Failed to start wake listener", "error", err)
		os.Exit(1)
	}
	defer wakeListener.Stop(ctx)

	// 6. Domain services
	var redisClient *redis.Client
	if redisCfg.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		defer func() { _ = redisClient.Close() }()
		slog.Info("Redis cache enabled", "addr", redisCfg.Addr)
	}

	agentConfigService := services.NewAgentConfigService(dbClient.Client)
	scenarioService := services.NewScenarioService(dbClient.Client)
	rubricService := services.NewRubricService(dbClient.Client)
	simulationService := services.NewSimulationService(dbClient.Client, llmClient, llmCfg, producer, m)
	evaluationService := services.NewEvaluationService(dbClient.Client, llmClient, llmCfg, producer, m)
	statsService := services.NewStatsService(dbClient.Client, redisClient, redisCfg)

	if _, err := rubricService.EnsureDefault(ctx); err != nil {
		slog.Error("Failed to seed default rubric", "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized")

	// 7. Worker pool (claims pending runs and executes simulations)
	workerPool := queue.NewWorkerPool(podID, dbClient, queueCfg, simulationService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	runService := services.NewRunService(dbClient.Client, workerPool)

	// 8. Pipeline consumers. One worker per group keeps per-key order.
	consumers := []*pipeline.Consumer{
		pipeline.NewConsumer(dbClient, producer, m, pipeline.ConsumerConfig{
			Topic:         pipeline.TopicConversationCompleted,
			Group:         pipeline.GroupEvaluationEngine,
			Handler:       pipeline.ConversationCompletedHandler(evaluationService),
			MaxRetries:    pipelineCfg.MaxRetries,
			PollInterval:  pipelineCfg.PollInterval,
			DedupCapacity: pipelineCfg.DedupCapacity,
			Wake:          wakeListener.Register(pipeline.TopicConversationCompleted),
		}),
		pipeline.NewConsumer(dbClient, producer, m, pipeline.ConsumerConfig{
			Topic:         pipeline.TopicEvaluationScoreCompleted,
			Group:         pipeline.GroupMetricsAggregator,
			Handler:       pipeline.EvaluationScoreHandler(dbClient, producer),
			MaxRetries:    pipelineCfg.MaxRetries,
			PollInterval:  pipelineCfg.PollInterval,
			DedupCapacity: pipelineCfg.DedupCapacity,
			Wake:          wakeListener.Register(pipeline.TopicEvaluationScoreCompleted),
		}),
		pipeline.NewConsumer(dbClient, producer, m, pipeline.ConsumerConfig{
			Topic:         pipeline.TopicMetricsAggregated,
			Group:         pipeline.GroupRunFinalizer,
			Handler:       pipeline.MetricsAggregatedHandler(dbClient),
			MaxRetries:    pipelineCfg.MaxRetries,
			PollInterval:  pipelineCfg.PollInterval,
			DedupCapacity: pipelineCfg.DedupCapacity,
			Wake:          wakeListener.Register(pipeline.TopicMetricsAggregated),
		}),
	}
	for _, c := range consumers {
		c.Start(ctx)
	}
	slog.Info("Pipeline consumers started", "count", len(consumers))

	// 9. Retention janitor
	cleanupService := cleanup.NewService(retentionCfg, dbClient.Client)
	cleanupService.Start(ctx)

	// 10. HTTP server (non-blocking)
	server := api.NewServer(
		dbClient, serverCfg,
		agentConfigService, scenarioService, rubricService,
		runService, evaluationService, statsService,
		workerPool,
	)
	httpServer := server.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("AgentProbe started successfully",
		"pod_id", podID,
		"workers", queueCfg.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: HTTP first so no new runs arrive, then the
	// pool, then consumers, then flush the producer.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	poolShutdownCtx, poolCancel := context.WithTimeout(ctx, queueCfg.GracefulShutdownTimeout)
	defer poolCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-poolShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	for _, c := range consumers {
		c.Stop()
	}
	cleanupService.Stop()

	if remaining := producer.Close(pipelineCfg.FlushTimeout); remaining > 0 {
		slog.Warn("Producer closed with undelivered messages", "count", remaining)
	}

	slog.Info("Shutdown complete")
}
