// Package hwmon defines the sensor surface a monitoring consumer polls:
// typed, labeled, read-only channels served from the latest decoded device
// snapshot. Chips register themselves by USB vendor/product id so the
// transport layer can match an attached device to its driver.
package hwmon

import (
	"errors"
	"fmt"
)

// SensorKind identifies the type of value a channel carries.
type SensorKind int

const (
	Temperature SensorKind = iota
	Fan
)

func (k SensorKind) String() string {
	switch k {
	case Temperature:
		return "temp"
	case Fan:
		return "fan"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps the wire/CLI spelling of a sensor kind back to its value.
func ParseKind(s string) (SensorKind, error) {
	switch s {
	case "temp", "temperature":
		return Temperature, nil
	case "fan":
		return Fan, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrUnsupportedChannel, s)
	}
}

// Unit returns the unit of the raw integer values for a kind.
// Temperatures are millidegrees Celsius, fans are RPM.
func (k SensorKind) Unit() string {
	switch k {
	case Temperature:
		return "millicelsius"
	case Fan:
		return "rpm"
	default:
		return ""
	}
}

// Channel describes one sensor channel. The set of channels a chip exposes
// is compiled in and identical across calls; every channel is read-only.
type Channel struct {
	Kind  SensorKind
	Index int
	Label string
}

// ErrUnsupportedChannel is returned for a kind/index pair outside a chip's
// channel table. Check with errors.Is.
var ErrUnsupportedChannel = errors.New("unsupported sensor channel")

// Chip is the read side of a monitored device. Read and Label never block;
// Read returns the value from the most recent snapshot, which is the zero
// value until the first report arrives.
type Chip interface {
	Name() string
	Channels() []Channel
	Read(kind SensorKind, index int) (int64, error)
	Label(kind SensorKind, index int) (string, error)
}

// Device is a Chip fed by a raw report transport. HandleReport runs on the
// delivery path and must not block; reports the chip does not recognize are
// dropped without effect.
type Device interface {
	Chip
	HandleReport(reportID byte, data []byte)
}

// Notifier is optionally implemented by devices that can signal when a new
// snapshot has been published.
type Notifier interface {
	Updated() <-chan struct{}
}

// Reading pairs a channel descriptor with its current value.
type Reading struct {
	Channel
	Value int64
}

// ReadAll snapshots every channel of a chip in table order.
func ReadAll(c Chip) ([]Reading, error) {
	chans := c.Channels()
	out := make([]Reading, 0, len(chans))
	for _, ch := range chans {
		v, err := c.Read(ch.Kind, ch.Index)
		if err != nil {
			return nil, fmt.Errorf("read %s%d: %w", ch.Kind, ch.Index, err)
		}
		out = append(out, Reading{Channel: ch, Value: v})
	}
	return out, nil
}

// FormatValue renders a raw channel value for human output, e.g. "35.0°C"
// or "3200 RPM".
func FormatValue(kind SensorKind, value int64) string {
	switch kind {
	case Temperature:
		return fmt.Sprintf("%.1f°C", float64(value)/1000)
	case Fan:
		return fmt.Sprintf("%d RPM", value)
	default:
		return fmt.Sprintf("%d", value)
	}
}
