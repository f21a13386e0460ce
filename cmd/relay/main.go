package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/nicklaw5/helix/v2"

	"github.com/mister-simon/Dustforce/internal/bus"
	"github.com/mister-simon/Dustforce/internal/config"
	"github.com/mister-simon/Dustforce/internal/discord"
	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/logging"
	"github.com/mister-simon/Dustforce/internal/platform/version"
	"github.com/mister-simon/Dustforce/internal/relay"
	"github.com/mister-simon/Dustforce/internal/replays"
	"github.com/mister-simon/Dustforce/internal/server"
	"github.com/mister-simon/Dustforce/internal/twitch"
)

func setupConfig() *config.Config {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupHelix(cfg *config.Config) *helix.Client {
	client, err := helix.NewClient(&helix.Options{
		ClientID:     cfg.TwitchClientID,
		ClientSecret: cfg.TwitchClientSecret,
	})
	if err != nil {
		slog.Error("Failed to create Twitch client", "error", err)
		os.Exit(1)
	}

	resp, err := client.RequestAppAccessToken(nil)
	if err != nil {
		slog.Error("Failed to request Twitch app access token", "error", err)
		os.Exit(1)
	}
	client.SetAppAccessToken(resp.Data.AccessToken)

	return client
}

func runGracefulShutdown(srv *server.Server, session *discord.Session, poller *twitch.Poller, feed *replays.Client, dispatcher *relay.Dispatcher, hub *bus.Hub) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		// Stop the sources first so nothing posts into a stopped dispatcher.
		poller.Stop()
		feed.Stop()
		if err := session.Close(); err != nil {
			slog.Error("Failed to close Discord session", "error", err)
		}

		dispatcher.Stop()
		hub.Stop()

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", version.Version)

	helixClient := setupHelix(cfg)

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		slog.Error("Failed to create Discord session", "error", err)
		os.Exit(1)
	}

	general := discord.NewChannel(session, cfg.GeneralChannelID, "general")
	leaderboard := discord.NewChannel(session, cfg.LeaderboardChannelID, "leaderboard")

	hub := bus.NewHub()

	// The poller and dispatcher reference each other: the dispatcher answers
	// stream queries from the poller's snapshot, and the poller posts stream
	// events into the dispatcher. Resolve the cycle with a late-bound closure;
	// the poller doesn't run until Start.
	var dispatcher *relay.Dispatcher
	poller := twitch.NewPoller(helixClient, func(ev domain.Event) { dispatcher.Post(ev) }, clock, cfg.TwitchPollInterval)
	dispatcher = relay.New(hub, general, leaderboard, poller)

	feed := replays.NewClient(cfg.ReplayFeedURL, dispatcher.Post)

	// Delay the gateway login so a crash-loop doesn't hammer the API.
	time.AfterFunc(cfg.LoginDelay, func() {
		slog.Info("Connecting to Discord gateway")
		if err := session.Connect(dispatcher.Post); err != nil {
			slog.Error("Failed to connect to Discord gateway", "error", err)
			os.Exit(1)
		}
	})

	poller.Start()
	feed.Start()

	srv := server.NewServer(cfg, hub, general, session.Open)

	done := runGracefulShutdown(srv, session, poller, feed, dispatcher, hub)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
