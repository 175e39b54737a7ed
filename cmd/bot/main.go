package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/hathorchat/hathor-wallet-relay/internal/bot"
	"github.com/hathorchat/hathor-wallet-relay/internal/jwt"
	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	botToken, relayURL, relayTimeoutSecond,
		jwtSecretKey, jwtExpSecond,
		miniAppURL, logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		botToken, relayURL, relayTimeoutSecond,
		jwtSecretKey, jwtExpSecond,
		miniAppURL, logLevel,
	); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting bot version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the bot
// configuration.
func parseConfig(path string) (
	botToken, relayURL string, relayTimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int,
	miniAppURL, logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	botToken = getEnv("BOT_TOKEN", "")
	relayURL = getEnv("API_BASE", "http://localhost:5000")
	if relayTimeoutSecond, err = strconv.Atoi(getEnv("API_TIMEOUT_SECOND", "30")); err != nil {
		return
	}

	// Empty secret disables self-signed bearer tokens
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "60")); err != nil {
		return
	}

	miniAppURL = getEnv("MINI_APP_URL", "")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	if botToken == "" {
		err = fmt.Errorf("BOT_TOKEN is required")
	}
	return
}

// run initializes the logger and the Telegram client and polls for updates
// until a shutdown signal arrives.
func run(ctx context.Context,
	botToken, relayURL string, relayTimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int,
	miniAppURL, logLevel string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()

	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	logger.Log.Infof("Authorized as @%s", api.Self.UserName)

	var tokens *jwt.JWT
	if jwtSecretKey != "" {
		tokens = jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)
	}

	relay := bot.NewClient(relayURL, time.Duration(relayTimeoutSecond)*time.Second, tokens)
	b := bot.New(api, relay, miniAppURL)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return b.Run(ctxShutdown)
}
