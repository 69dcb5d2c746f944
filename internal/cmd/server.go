package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"krakenmon/internal/hidraw"
	"krakenmon/internal/log"
	"krakenmon/internal/server/api"
	"krakenmon/pkg/hwmon"
	"krakenmon/pkg/kraken"
)

// Server runs the monitoring daemon: report delivery from the device on one
// side, the HTTP sensor API on the other.
type Server struct {
	Api    api.Config `embed:"" prefix:"api."`
	Device string     `help:"Explicit hidraw device path (default: autodetect by vendor/product id)" type:"path" env:"KRAKENMON_DEVICE"`
	Mock   bool       `help:"Serve synthetic readings without hardware"`
}

// Run is called by Kong when the server command is executed.
func (s *Server) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.serve(ctx, logger, rawLogger)
}

func (s *Server) serve(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	var dev hwmon.Device
	transportErr := make(chan error, 1)

	if s.Mock {
		dev = kraken.New()
		logger.Warn("serving synthetic readings", "device", dev.Name())
		go func() {
			mockReports(ctx, dev.HandleReport)
			transportErr <- nil
		}()
	} else {
		conn, info, reg, err := attach(s.Device)
		if err != nil {
			return err
		}
		dev = reg.New()
		logger.Info("device attached",
			"path", info.Path,
			"name", info.Name,
			"driver", reg.Name)
		go func() {
			transportErr <- hidraw.Serve(ctx, conn, dev.HandleReport, rawLogger)
		}()
	}

	srv := api.New(dev, s.Api, logger)
	apiErr := make(chan error, 1)
	go func() {
		apiErr <- srv.Listen()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-transportErr:
		if err != nil {
			logger.Error("device transport failed", "error", err)
			_ = srv.Shutdown()
			return err
		}
	case err := <-apiErr:
		return err
	}
	return srv.Shutdown()
}
