// Package cmd holds the kong command implementations of the krakenmon CLI.
package cmd

import (
	"fmt"
	"strings"

	"krakenmon/internal/hidraw"
	"krakenmon/pkg/hwmon"
)

// attach resolves which hidraw node to use and which driver serves it.
// With an explicit path the node must match a registered driver; otherwise
// the first enumerated node with a matching driver wins.
func attach(devicePath string) (*hidraw.Conn, hidraw.DeviceInfo, hwmon.Registration, error) {
	if devicePath != "" {
		conn, info, err := hidraw.Open(devicePath)
		if err != nil {
			return nil, hidraw.DeviceInfo{}, hwmon.Registration{}, err
		}
		reg, ok := hwmon.Lookup(info.VendorID, info.ProductID)
		if !ok {
			_ = conn.Close()
			return nil, hidraw.DeviceInfo{}, hwmon.Registration{},
				fmt.Errorf("no driver for %s (supported: %s)", info, strings.Join(hwmon.SupportedNames(), ", "))
		}
		return conn, info, reg, nil
	}

	devices, err := hidraw.Enumerate()
	if err != nil {
		return nil, hidraw.DeviceInfo{}, hwmon.Registration{}, err
	}
	for _, d := range devices {
		reg, ok := hwmon.Lookup(d.VendorID, d.ProductID)
		if !ok {
			continue
		}
		conn, info, err := hidraw.Open(d.Path)
		if err != nil {
			// Enumerable but not openable, e.g. raced with unplug.
			continue
		}
		return conn, info, reg, nil
	}
	return nil, hidraw.DeviceInfo{}, hwmon.Registration{},
		fmt.Errorf("no supported device found (supported: %s)", strings.Join(hwmon.SupportedNames(), ", "))
}
