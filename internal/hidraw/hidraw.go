// Package hidraw is the transport glue between a hidraw character device
// and a report decoder: it enumerates devices by vendor/product id, opens a
// connection and pumps inbound reports to the decoder as they arrive.
package hidraw

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"krakenmon/internal/log"
)

// DeviceInfo identifies one hidraw node.
type DeviceInfo struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Name      string
}

func (d DeviceInfo) String() string {
	return fmt.Sprintf("%s [%04x:%04x] %s", d.Path, d.VendorID, d.ProductID, d.Name)
}

// Conn is an open hidraw connection.
type Conn struct {
	f *os.File
}

// FromFile wraps an already-open file as a Conn. Used by tests; real
// connections come from Open.
func FromFile(f *os.File) *Conn {
	return &Conn{f: f}
}

func (c *Conn) Close() error {
	return c.f.Close()
}

// ReportFunc receives each inbound report. The device uses numbered
// reports, so data[0] carries the report id and id duplicates it; field
// offsets documented for the device index into the full buffer. data is
// only valid for the duration of the call.
type ReportFunc func(id byte, data []byte)

// maxReportBytes comfortably exceeds any report the device emits (its
// largest is well under 64 bytes).
const maxReportBytes = 64

// Serve reads reports from conn until ctx is canceled or the read fails,
// delivering each to fn and, when enabled, to the raw traffic logger.
// There is no acknowledgment path back to the device.
//
// Cancellation closes the connection to unblock the pending read; in that
// case Serve returns nil. A read failure with a live context means the
// device went away and is returned to the caller.
func Serve(ctx context.Context, conn *Conn, fn ReportFunc, raw log.RawLogger) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	buf := make([]byte, maxReportBytes)
	for {
		n, err := conn.f.Read(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, fs.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read report: %w", err)
		}
		if n == 0 {
			continue
		}
		data := buf[:n]
		if raw != nil {
			raw.Log(data[0], data)
		}
		fn(data[0], data)
	}
}
