package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all process configuration, loaded from environment variables.
type Config struct {
	AppEnv               string
	Port                 string
	DiscordToken         string
	TwitchClientID       string
	TwitchClientSecret   string
	SubscriberToken      string
	GeneralChannelID     string
	LeaderboardChannelID string
	ReplayFeedURL        string
	LoginDelay           time.Duration
	TwitchPollInterval   time.Duration
	LogLevel             string
	LogFormat            string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:               getEnv("APP_ENV", "development"),
		Port:                 getEnv("PORT", "8080"),
		DiscordToken:         getEnv("DISCORD_TOKEN", ""),
		TwitchClientID:       getEnv("TWITCH_CLIENT_ID", ""),
		TwitchClientSecret:   getEnv("TWITCH_CLIENT_SECRET", ""),
		SubscriberToken:      getEnv("SUBSCRIBER_TOKEN", ""),
		GeneralChannelID:     getEnv("GENERAL_CHANNEL_ID", ""),
		LeaderboardChannelID: getEnv("LEADERBOARD_CHANNEL_ID", ""),
		ReplayFeedURL:        getEnv("REPLAY_FEED_URL", "wss://dustkid.com/replay-feed"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
	}

	var err error
	cfg.LoginDelay, err = getDuration("LOGIN_DELAY", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.TwitchPollInterval, err = getDuration("TWITCH_POLL_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.TwitchClientID == "" {
		return nil, fmt.Errorf("TWITCH_CLIENT_ID is required")
	}
	if cfg.TwitchClientSecret == "" {
		return nil, fmt.Errorf("TWITCH_CLIENT_SECRET is required")
	}
	if cfg.SubscriberToken == "" {
		return nil, fmt.Errorf("SUBSCRIBER_TOKEN is required")
	}
	if cfg.GeneralChannelID == "" {
		return nil, fmt.Errorf("GENERAL_CHANNEL_ID is required")
	}

	// The leaderboard channel historically shared the general channel's ID.
	// Keep that as the default so a single-channel setup needs one variable.
	if cfg.LeaderboardChannelID == "" {
		cfg.LeaderboardChannelID = cfg.GeneralChannelID
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	// Accept plain seconds for compatibility with older deployments.
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
