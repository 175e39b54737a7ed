package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/hathorchat/hathor-wallet-relay/internal/handlers"
	"github.com/hathorchat/hathor-wallet-relay/internal/hathor"
	"github.com/hathorchat/hathor-wallet-relay/internal/jwt"
	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/middlewares"
	"github.com/hathorchat/hathor-wallet-relay/internal/repositories"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
	"github.com/hathorchat/hathor-wallet-relay/internal/telegram"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hathorchat/hathor-wallet-relay/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title hathor-wallet-relay API
// @version 1.0.0
// @description Relay service provisioning custodial Hathor wallets for Telegram users
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		walletAPIURL, walletAPITimeoutSecond,
		network, explorerTxURL,
		pollIntervalMs, readyTimeoutSecond, historyStrict,
		userStore, usersFile,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		botToken, authRequired,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		walletAPIURL, walletAPITimeoutSecond,
		network, explorerTxURL,
		pollIntervalMs, readyTimeoutSecond, historyStrict,
		userStore, usersFile,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		botToken, authRequired,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, upstream, store, Kafka, JWT, and bot configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	walletAPIURL string, walletAPITimeoutSecond int,
	network, explorerTxURL string,
	pollIntervalMs, readyTimeoutSecond int, historyStrict bool,
	userStore, usersFile string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	botToken string, authRequired bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "5000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Upstream wallet-headless config
	walletAPIURL = getEnv("WALLET_API_URL", "http://localhost:8000")
	if walletAPITimeoutSecond, err = strconv.Atoi(getEnv("WALLET_API_TIMEOUT_SECOND", "15")); err != nil {
		return
	}
	network = getEnv("HATHOR_NETWORK", "")
	explorerTxURL = getEnv("EXPLORER_TX_URL", "")
	if pollIntervalMs, err = strconv.Atoi(getEnv("SESSION_POLL_INTERVAL_MS", "250")); err != nil {
		return
	}
	if readyTimeoutSecond, err = strconv.Atoi(getEnv("SESSION_READY_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	historyStrict = getEnv("HISTORY_STRICT", "false") == "true"

	// User store config
	userStore = getEnv("USER_STORE", "file")
	usersFile = getEnv("USERS_FILE", "users.json")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; empty brokers disable transfer events
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transfers")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Bot config
	botToken = getEnv("BOT_TOKEN", "")
	authRequired = getEnv("AUTH_REQUIRED", "false") == "true"

	return
}

// run initializes the logger, the user store, the upstream client, and the
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	walletAPIURL string, walletAPITimeoutSecond int,
	network, explorerTxURL string,
	pollIntervalMs, readyTimeoutSecond int, historyStrict bool,
	userStore, usersFile string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	botToken string, authRequired bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Pick the user store backend
	var readStore services.UserReader
	var writeStore services.UserWriter

	switch userStore {
	case "file":
		repo := repositories.NewUserFileRepository(usersFile)
		readStore, writeStore = repo, repo
		logger.Log.Infof("Using file user store at %s", usersFile)

	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("PostgreSQL ping failed: %w", err)
		}

		repo := repositories.NewUserPostgresRepository(db)
		readStore, writeStore = repo, repo

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		repo := repositories.NewUserRedisRepository(rdb)
		readStore, writeStore = repo, repo

	default:
		return fmt.Errorf("unknown USER_STORE %q", userStore)
	}

	// Kafka writer for transfer events
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka transfer events enabled on topic %s", kafkaTopic)
	}

	// Upstream wallet-headless client
	hathorClient := hathor.New(walletAPIURL, time.Duration(walletAPITimeoutSecond)*time.Second)

	// Initialize services
	sessionService := services.NewSessionService(hathorClient, network,
		time.Duration(pollIntervalMs)*time.Millisecond,
		time.Duration(readyTimeoutSecond)*time.Second)
	historyMapper := services.NewHistoryMapper(explorerTxURL, historyStrict)
	walletService := services.NewWalletService(readStore, writeStore, hathorClient,
		sessionService, historyMapper, kafkaWriter)

	// Initialize JWT service and init data verifier
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)
	verifier := telegram.NewVerifier(botToken, 24*time.Hour)

	// Initialize handlers
	createWalletHandler := handlers.NewCreateWalletHandler(walletService)
	getWalletHandler := handlers.NewGetWalletHandler(walletService, hathorClient)
	walletAddressHandler := handlers.NewWalletAddressHandler(hathorClient)
	walletBalanceHandler := handlers.NewWalletBalanceHandler(walletService)
	walletStatusHandler := handlers.NewWalletStatusHandler(hathorClient)
	balanceHandler := handlers.NewGetBalanceHandler(walletService)
	statusHandler := handlers.NewGetStatusHandler(walletService)
	historyHandler := handlers.NewGetHistoryHandler(walletService)
	transactionHandler := handlers.NewGetTransactionHandler(walletService)
	sendHandler := handlers.NewSendHandler(walletService)
	tipHandler := handlers.NewTipHandler(walletService)
	authHandler := handlers.NewTelegramAuthHandler(verifier, tokens)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Liveness probe
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "HathorChat backend is alive")
	})

	// Public routes
	r.Post("/api/auth/telegram", authHandler)

	// API routes; protected with JWT middleware when AUTH_REQUIRED is set
	r.Group(func(r chi.Router) {
		if authRequired {
			r.Use(middlewares.AuthMiddleware(tokens))
		}

		r.Post("/api/createWallet", createWalletHandler)
		r.Get("/api/wallet/{telegramId}", getWalletHandler)
		r.Get("/api/wallet/{walletId}/address", walletAddressHandler)
		r.Get("/api/wallet/{walletId}/balance", walletBalanceHandler)
		r.Get("/api/wallet/{walletId}/status", walletStatusHandler)
		r.Get("/api/balance/{telegramId}", balanceHandler)
		r.Get("/api/status/{telegramId}", statusHandler)
		r.Get("/api/tx-history/{telegramId}", historyHandler)
		r.Get("/api/transaction/{telegramId}/{txId}", transactionHandler)
		r.Post("/api/send", sendHandler)
		r.Post("/api/tip", tipHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
