// Package server hosts the HTTP surface: the subscriber websocket endpoint,
// health probes, and Prometheus metrics.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mister-simon/Dustforce/internal/bus"
	"github.com/mister-simon/Dustforce/internal/config"
	"github.com/mister-simon/Dustforce/internal/discord"
)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	hub       *bus.Hub
	general   *discord.Channel
	ready     func() bool
	startTime time.Time
}

// NewServer wires the HTTP routes. ready reports whether the upstream
// connections are established; it backs the readiness probe.
func NewServer(cfg *config.Config, hub *bus.Hub, general *discord.Channel, ready func() bool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:      e,
		config:    cfg,
		hub:       hub,
		general:   general,
		ready:     ready,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
