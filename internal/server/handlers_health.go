package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mister-simon/Dustforce/internal/platform/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status":  "ok",
		"uptime":  uptime,
		"version": version.Get(),
	})
}

// handleReadiness reports ready once the chat gateway connection is
// established. Stream and replay sources reconnect on their own, so they
// don't gate readiness.
func (s *Server) handleReadiness(c echo.Context) error {
	if s.ready != nil && !s.ready() {
		return c.JSON(503, map[string]any{
			"status":       "unhealthy",
			"failed_check": "discord_gateway",
		})
	}
	return c.JSON(200, map[string]string{"status": "ready"})
}
