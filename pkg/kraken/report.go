package kraken

import (
	"encoding/binary"
)

// HandleReport decodes one inbound report into a fresh snapshot.
//
// Status report layout (16+ bytes, offsets fixed by firmware):
//
//	Byte 0: Report id (4 = status)
//	Byte 1: Coolant temperature, whole degrees Celsius
//	Byte 2: Coolant temperature, hundredths of a degree
//	Bytes 3-4: Fan speed, big-endian RPM
//	Bytes 5-6: Pump speed, big-endian RPM
//	Bytes 7+: Reserved
//
// Reports with any other id, or shorter than StatusMinBytes, are not ours;
// they are dropped silently and the state is left untouched. The transport
// delivers other report types on the same endpoint, so this is normal
// traffic, not an error.
//
// The new snapshot is published with a single pointer store, keeping the
// delivery path non-blocking and whole-record atomic for readers. data is
// not retained past the call, so the caller may reuse its buffer.
func (d *Device) HandleReport(reportID byte, data []byte) {
	if reportID != StatusReportID || len(data) < StatusMinBytes {
		return
	}

	snap := &Snapshot{
		CoolantTemp: int64(data[1])*1000 + int64(data[2])*100,
	}
	snap.FanRPM[0] = int64(binary.BigEndian.Uint16(data[3:5]))
	snap.FanRPM[1] = int64(binary.BigEndian.Uint16(data[5:7]))
	d.state.Store(snap)

	select {
	case d.updated <- struct{}{}:
	default:
	}
}
