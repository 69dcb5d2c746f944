// Package api serves the sensor table over HTTP for monitoring consumers.
// The surface is strictly read-only: every route is a GET and no control or
// PWM endpoint exists.
package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"krakenmon/pkg/hwmon"
)

// Config holds the HTTP front-end settings.
type Config struct {
	Addr string `help:"Listen address for the monitoring API" default:":7266" env:"KRAKENMON_API_ADDR"`
}

// Server exposes one chip's channels over HTTP.
type Server struct {
	app    *fiber.App
	chip   hwmon.Chip
	cfg    Config
	logger *slog.Logger
}

// New builds the server and registers its routes for the given chip.
func New(chip hwmon.Chip, cfg Config, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "krakenmon",
		AppName:               "krakenmon",
		DisableStartupMessage: true,
	})

	s := &Server{app: app, chip: chip, cfg: cfg, logger: logger}

	app.Get("/device", s.getDevice)
	app.Get("/sensors", s.getSensors)
	app.Get("/sensors/:kind/:index", s.getSensor)

	return s
}

// Listen serves until Shutdown is called.
func (s *Server) Listen() error {
	s.logger.Info("monitoring API listening", "addr", s.cfg.Addr, "device", s.chip.Name())
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying fiber app, used by tests to inject requests.
func (s *Server) App() *fiber.App {
	return s.app
}
