package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "test-discord-token")
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")
	t.Setenv("TWITCH_CLIENT_SECRET", "test-client-secret")
	t.Setenv("SUBSCRIBER_TOKEN", "test-subscriber-token")
	t.Setenv("GENERAL_CHANNEL_ID", "423903301093031966")
}

func TestLoad_AllRequiredVarsSet(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-discord-token", cfg.DiscordToken)
	assert.Equal(t, "test-client-id", cfg.TwitchClientID)
	assert.Equal(t, "test-client-secret", cfg.TwitchClientSecret)
	assert.Equal(t, "test-subscriber-token", cfg.SubscriberToken)
	assert.Equal(t, "423903301093031966", cfg.GeneralChannelID)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		skipEnv string
		wantErr string
	}{
		{"missing DISCORD_TOKEN", "DISCORD_TOKEN", "DISCORD_TOKEN is required"},
		{"missing TWITCH_CLIENT_ID", "TWITCH_CLIENT_ID", "TWITCH_CLIENT_ID is required"},
		{"missing TWITCH_CLIENT_SECRET", "TWITCH_CLIENT_SECRET", "TWITCH_CLIENT_SECRET is required"},
		{"missing SUBSCRIBER_TOKEN", "SUBSCRIBER_TOKEN", "SUBSCRIBER_TOKEN is required"},
		{"missing GENERAL_CHANNEL_ID", "GENERAL_CHANNEL_ID", "GENERAL_CHANNEL_ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.skipEnv, "")

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "wss://dustkid.com/replay-feed", cfg.ReplayFeedURL)
	assert.Equal(t, 5*time.Second, cfg.LoginDelay)
	assert.Equal(t, 30*time.Second, cfg.TwitchPollInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_LeaderboardDefaultsToGeneral(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.GeneralChannelID, cfg.LeaderboardChannelID)

	t.Setenv("LEADERBOARD_CHANNEL_ID", "111111111111111111")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "111111111111111111", cfg.LeaderboardChannelID)
}

func TestLoad_Durations(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("LOGIN_DELAY", "10")
	t.Setenv("TWITCH_POLL_INTERVAL", "1m30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.LoginDelay)
	assert.Equal(t, 90*time.Second, cfg.TwitchPollInterval)

	t.Setenv("LOGIN_DELAY", "soon")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGIN_DELAY must be a duration")
}
