package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-finance-assistant/docs"
	"github.com/sbilibin2017/gw-finance-assistant/internal/gateway"
	"github.com/sbilibin2017/gw-finance-assistant/internal/grpcserver"
	"github.com/sbilibin2017/gw-finance-assistant/internal/handlers"
	"github.com/sbilibin2017/gw-finance-assistant/internal/jwt"
	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/middlewares"
	"github.com/sbilibin2017/gw-finance-assistant/internal/processor"
	"github.com/sbilibin2017/gw-finance-assistant/internal/repositories"
	"github.com/sbilibin2017/gw-finance-assistant/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string
	timezone string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	summaryExp        time.Duration
	idempotencyExp    time.Duration
	idempotencyLock   time.Duration

	kafkaBrokers []string
	kafkaTopic   string

	grpcPort string

	jwtSecret string
	jwtExp    time.Duration

	adminEmail        string
	adminPasswordHash string

	gatewayURL      string
	gatewayInstance string
	gatewayAPIKey   string
	webhookKey      string
}

// @title gw-finance-assistant API
// @version 1.0.0
// @description WhatsApp finance assistant: records expenses and income from chat messages and reports balances
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name apikey
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, gRPC, JWT, admin and gateway configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.timezone = getEnv("APP_TIMEZONE", "America/Sao_Paulo")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.summaryExp, err = getSeconds("REDIS_SUMMARY_EXP_SECOND", "300"); err != nil {
		return
	}
	if cfg.idempotencyExp, err = getSeconds("REDIS_IDEMPOTENCY_EXP_SECOND", "86400"); err != nil {
		return
	}
	if cfg.idempotencyLock, err = getSeconds("REDIS_IDEMPOTENCY_LOCK_SECOND", "30"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// gRPC config
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// JWT config
	cfg.jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExp, err = getSeconds("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Admin config
	cfg.adminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.adminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	// Messaging gateway config
	cfg.gatewayURL = getEnv("GATEWAY_BASE_URL", "http://localhost:8081")
	cfg.gatewayInstance = getEnv("GATEWAY_INSTANCE", "financial-assistant")
	cfg.gatewayAPIKey = getEnv("GATEWAY_API_KEY", "")
	cfg.webhookKey = getEnv("GATEWAY_WEBHOOK_KEY", "")

	return
}

// run initializes the logger, database, Redis, Kafka, the gRPC health server and
// the HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	location, err := time.LoadLocation(cfg.timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.timezone, err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	// Kafka events are optional
	var events services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
		logger.Log.Infof("Publishing transaction events to %s on %v", cfg.kafkaTopic, cfg.kafkaBrokers)
	}

	// Start gRPC health server
	grpcSrv := grpcserver.New(net.JoinHostPort(cfg.appHost, cfg.grpcPort))
	if err := grpcSrv.Listen(); err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecret),
		jwt.WithExpiration(cfg.jwtExp),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	txnReadRepo := repositories.NewTransactionReadRepository(db, txGetter)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	summaryCache := repositories.NewSummaryCacheRepository(rdb, cfg.summaryExp)
	idempotencyRepo := repositories.NewIdempotencyRepository(rdb, cfg.idempotencyLock, cfg.idempotencyExp)

	// Initialize services
	proc := processor.New(processor.WithLocation(location))
	chatService := services.NewChatService(
		userReadRepo, userWriteRepo,
		txnReadRepo, txnWriteRepo,
		summaryCache, events,
		proc, location,
		middlewares.AfterCommit,
	)
	reportService := services.NewReportService(txnReadRepo, summaryCache, location)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, tokens, cfg.adminEmail, cfg.adminPasswordHash)
	gatewayClient := gateway.New(cfg.gatewayURL, cfg.gatewayInstance, cfg.gatewayAPIKey)

	// Initialize handlers
	messageHandler := handlers.NewMessageHandler(chatService)
	greetingHandler := handlers.NewGreetingHandler(chatService)
	webhookHandler := handlers.NewWebhookHandler(chatService, idempotencyRepo, gatewayClient)
	summaryHandler := handlers.NewSummaryHandler(reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	loginHandler := handlers.NewLoginHandler(adminService)
	listUsersHandler := handlers.NewListUsersHandler(adminService)
	updateStatusHandler := handlers.NewUpdateUserStatusHandler(adminService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Chat and reports, called by the gateway and the simulator
		r.Group(func(r chi.Router) {
			r.Use(middlewares.APIKeyMiddleware(cfg.webhookKey))
			r.With(
				middlewares.IdempotencyMiddleware(idempotencyRepo),
				middlewares.TxMiddleware(db),
			).Post("/messages", messageHandler)
			r.Get("/messages/greeting", greetingHandler)
			// No request transaction: the reply goes out only after the writes are committed
			r.Post("/webhook/whatsapp", webhookHandler)
			r.Get("/users/{phone}/summary", summaryHandler)
			r.Get("/users/{phone}/report", reportHandler)
		})

		// Admin panel
		r.Post("/admin/login", loginHandler)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Get("/admin/users", listUsersHandler)
			r.Patch("/admin/users/{id}/status", updateStatusHandler)
		})
	})

	docs.SwaggerInfo.Host = net.JoinHostPort(cfg.appHost, cfg.appPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcSrv.Addr())
		if err := grpcSrv.Start(); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcSrv.Stop()
		return serveErr
	}

	grpcSrv.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}
