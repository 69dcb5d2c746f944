package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"krakenmon/internal/hidraw"
	"krakenmon/internal/log"
	"krakenmon/pkg/hwmon"
)

// Read attaches to the device, waits for the first status report and prints
// one snapshot of every channel.
type Read struct {
	Device  string        `help:"Explicit hidraw device path (default: autodetect by vendor/product id)" type:"path" env:"KRAKENMON_DEVICE"`
	Timeout time.Duration `help:"How long to wait for the first status report" default:"5s"`
}

func (r *Read) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, info, reg, err := attach(r.Device)
	if err != nil {
		return err
	}
	dev := reg.New()
	logger.Debug("device attached", "path", info.Path, "driver", reg.Name)

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- hidraw.Serve(serveCtx, conn, dev.HandleReport, rawLogger)
	}()

	if n, ok := dev.(hwmon.Notifier); ok {
		select {
		case <-n.Updated():
		case <-time.After(r.Timeout):
			cancel()
			<-serveErr
			return fmt.Errorf("no status report from %s within %s", info.Path, r.Timeout)
		case err := <-serveErr:
			if err != nil {
				return err
			}
			return fmt.Errorf("interrupted before the first status report")
		}
	}

	cancel()
	<-serveErr

	readings, err := hwmon.ReadAll(dev)
	if err != nil {
		return err
	}
	for _, rd := range readings {
		fmt.Printf("%-8s %s\n", rd.Label+":", hwmon.FormatValue(rd.Kind, rd.Value))
	}
	return nil
}
