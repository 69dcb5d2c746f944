package kraken

import (
	"fmt"

	"krakenmon/pkg/hwmon"
)

// TempLabel is the label of the single temperature channel.
const TempLabel = "Coolant"

var fanLabels = [FanChannels]string{"Fans", "Pump"}

var channelTable = [...]hwmon.Channel{
	{Kind: hwmon.Temperature, Index: 0, Label: TempLabel},
	{Kind: hwmon.Fan, Index: 0, Label: fanLabels[0]},
	{Kind: hwmon.Fan, Index: 1, Label: fanLabels[1]},
}

func (d *Device) Name() string { return DeviceName }

// Channels returns the fixed channel table: Coolant, Fans, Pump.
func (d *Device) Channels() []hwmon.Channel {
	out := make([]hwmon.Channel, len(channelTable))
	copy(out, channelTable[:])
	return out
}

// Read returns the current value of a channel from the latest snapshot.
func (d *Device) Read(kind hwmon.SensorKind, index int) (int64, error) {
	snap := d.state.Load()
	switch kind {
	case hwmon.Temperature:
		if index != 0 {
			return 0, unsupported(kind, index)
		}
		return snap.CoolantTemp, nil
	case hwmon.Fan:
		if index < 0 || index >= FanChannels {
			return 0, unsupported(kind, index)
		}
		return snap.FanRPM[index], nil
	default:
		return 0, unsupported(kind, index)
	}
}

// Label returns the fixed label of a channel.
func (d *Device) Label(kind hwmon.SensorKind, index int) (string, error) {
	switch kind {
	case hwmon.Temperature:
		if index != 0 {
			return "", unsupported(kind, index)
		}
		return TempLabel, nil
	case hwmon.Fan:
		if index < 0 || index >= FanChannels {
			return "", unsupported(kind, index)
		}
		return fanLabels[index], nil
	default:
		return "", unsupported(kind, index)
	}
}

func unsupported(kind hwmon.SensorKind, index int) error {
	return fmt.Errorf("%w: %s%d", hwmon.ErrUnsupportedChannel, kind, index)
}
