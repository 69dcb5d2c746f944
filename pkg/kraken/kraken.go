// Package kraken implements the status-report decoder and sensor table for
// third-generation NZXT Kraken X liquid coolers (X42/X52/X62/X72).
//
// The cooler pushes a fixed-layout status report a few times per second over
// HID; the decoder turns each valid report into an immutable snapshot of
// coolant temperature, fan speed and pump speed. LED and other features of
// the device are left to user-space tools and are not touched here, nor is
// there a fan-control write path.
package kraken

import (
	"sync/atomic"

	"krakenmon/pkg/hwmon"
)

const (
	VendorID  = 0x1e71
	ProductID = 0x170e

	// DeviceName is the stable name the chip is registered under.
	DeviceName = "krakenx"

	// StatusReportID tags the periodic status report.
	StatusReportID = 4
	// StatusMinBytes is the minimum length of a status report. Bytes past
	// offset 6 are reserved.
	StatusMinBytes = 16

	// FanChannels is the number of rotational speed channels: the aggregate
	// fan header and the pump.
	FanChannels = 2
)

// Snapshot is the complete decoded state from one status report. Values are
// zero until the first valid report arrives. A Snapshot is immutable once
// published.
type Snapshot struct {
	// CoolantTemp is the coolant temperature in millidegrees Celsius.
	CoolantTemp int64
	// FanRPM holds the fan (index 0) and pump (index 1) speeds in RPM.
	FanRPM [FanChannels]int64
}

// Device owns the state for one attached cooler. It is written by the report
// delivery path and read by any number of concurrent consumers; the state is
// published as a whole record behind an atomic pointer, so a reader never
// observes fields from two different reports.
type Device struct {
	state   atomic.Pointer[Snapshot]
	updated chan struct{}
}

// New returns a Device with a zero snapshot already published.
func New() *Device {
	d := &Device{updated: make(chan struct{}, 1)}
	d.state.Store(&Snapshot{})
	return d
}

// Snapshot returns the most recently published state.
func (d *Device) Snapshot() Snapshot {
	return *d.state.Load()
}

// Updated signals after each accepted status report. The channel has a
// one-slot buffer and signals are dropped when nobody is waiting, so a slow
// consumer only ever delays itself.
func (d *Device) Updated() <-chan struct{} {
	return d.updated
}

func init() {
	hwmon.Register(VendorID, ProductID, hwmon.Registration{
		Name: DeviceName,
		New:  func() hwmon.Device { return New() },
	})
}
