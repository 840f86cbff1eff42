package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hearing-hub/auth"
	"hearing-hub/cache"
	"hearing-hub/handlers"
	"hearing-hub/infrastructure/api"
	"hearing-hub/infrastructure/client"
	"hearing-hub/infrastructure/healthcheck"
	"hearing-hub/infrastructure/websocket"
	"hearing-hub/internal"
	"hearing-hub/messaging"
	"hearing-hub/moderation"
	"hearing-hub/repositories"
	"hearing-hub/runtime"
	"hearing-hub/runtime/workers"
	"hearing-hub/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component, blocks until a signal arrives and returns once the
// workers stopped, so that deferred cleanups (BadgerDB) always run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	censoredChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB), in memory when no path is configured
	options := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING)
	if config.BadgerFilepath == "" {
		options = options.WithInMemory(true)
	}
	db, err := badger.Open(options)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation: shipped dictionaries plus CENSORED_WORDS, persisted then reloaded
	dictionaries, err := moderation.NewDefaultCensoredLoader().LoadAll("censored")
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	wordRepository := repositories.NewCensoredWordRepository(db)
	if err := wordRepository.Seed(append(dictionaries.Words, config.Words()...)); err != nil {
		return fmt.Errorf("censored words seeding failed: %w", err)
	}
	words, err := wordRepository.LoadWords()
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(words, censoredChar, log)
	if err != nil {
		return err
	}
	log.Info("Moderation ready", "words", len(words), "languages", dictionaries.Languages)

	// 4. Upstream clients
	conferenceClient := client.NewConferenceDataClient(log, config.ConferenceAPIURL, config.UpstreamTimeout)
	userClient := client.NewUserProfileClient(log, config.UserAPIURL, config.UpstreamTimeout)
	videoClient := client.NewVideoSessionClient(log, config.VideoAPIURL, config.UpstreamTimeout)

	// 5. Hub & services
	conferenceCache := cache.NewConferenceCache(log)
	registry := runtime.NewRegistry()
	hub := runtime.NewEventHub(log, registry, config.SinkTimeout)
	conferenceService := services.NewConferenceService(log, conferenceCache, conferenceClient)
	tracker := services.NewInvitationTracker()
	notifier := services.NewConsultationNotifier(log, hub, tracker)
	consultations := services.NewConsultationService(log, conferenceService, notifier, tracker)
	messages := services.NewInstantMessageService(log, conferenceService, messaging.NewInstantMessageRules(log, userClient),
		userClient, moderator, repositories.NewMessageRepository(db, log, config.LimitMessages), hub)

	deps := api.Dependencies{
		Tokens:        auth.NewTokenService(config.JWTSecret),
		Messages:      messages,
		Management:    services.NewConferenceManagementService(log, conferenceService, videoClient, hub),
		Consultations: consultations,
		Events:        handlers.NewDefaultDispatcher(log, hub, conferenceCache),
		Hub:           websocket.NewHandler(log, registry, conferenceService, config.SinkBufferSize, config.SinkTimeout),
	}
	if config.EnableInspector {
		deps.Inspector = internal.StoreInspector(db, nil)
	}
	health := healthcheck.NewServer(log, config.HealthAddress())

	// 6. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		api.NewServer(log, config.Address(), api.NewRouter(log, deps), config.ShutdownTimeout),
		health,
		workers.NewHeartbeatWorker(log, health, config.HeartbeatInterval),
		workers.NewInvitationExpiryWorker(log, consultations, config.InvitationTTL, config.InvitationSweepInterval),
	)

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting hearing hub", "address", config.Address(), "health", config.HealthAddress())
	sup.Run(ctx)
	log.Info("Program stopped cleanly")
	return nil
}
