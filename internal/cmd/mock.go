package cmd

import (
	"context"
	"encoding/binary"
	"math"
	"time"

	"krakenmon/internal/hidraw"
	"krakenmon/pkg/kraken"
)

// mockReports synthesizes status reports at roughly the cadence the cooler
// uses, so the daemon and TUI can be exercised without hardware.
func mockReports(ctx context.Context, fn hidraw.ReportFunc) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	buf := make([]byte, kraken.StatusMinBytes)
	for tick := 0; ; tick++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		// Coolant drifts around 30°C, fans and pump wobble around idle.
		wave := math.Sin(float64(tick) / 10)
		temp := 30.0 + 2.5*wave
		whole := int(temp)

		buf[0] = kraken.StatusReportID
		buf[1] = byte(whole)
		buf[2] = byte(int(temp*100) - whole*100)
		binary.BigEndian.PutUint16(buf[3:5], uint16(950+100*wave))
		binary.BigEndian.PutUint16(buf[5:7], uint16(2100+150*wave))

		fn(kraken.StatusReportID, buf)
	}
}
