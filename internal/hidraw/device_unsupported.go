//go:build !linux

package hidraw

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("hidraw devices are not supported on " + runtime.GOOS)

// Enumerate is only implemented on Linux.
func Enumerate() ([]DeviceInfo, error) {
	return nil, errUnsupported
}

// Probe is only implemented on Linux.
func Probe(path string) (DeviceInfo, error) {
	return DeviceInfo{}, errUnsupported
}

// Open is only implemented on Linux.
func Open(path string) (*Conn, DeviceInfo, error) {
	return nil, DeviceInfo{}, errUnsupported
}
