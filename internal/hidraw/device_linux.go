//go:build linux

package hidraw

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sys/unix"
)

// Enumerate scans /dev/hidraw* and returns identity info for every node we
// can open. Nodes that fail to open (typically permissions) are skipped.
func Enumerate() ([]DeviceInfo, error) {
	paths, err := filepath.Glob("/dev/hidraw*")
	if err != nil {
		return nil, err
	}

	var out []DeviceInfo
	for _, path := range paths {
		info, err := Probe(path)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Probe opens a hidraw node just long enough to read its identity.
func Probe(path string) (DeviceInfo, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	return probeFd(fd, path)
}

func probeFd(fd int, path string) (DeviceInfo, error) {
	devinfo, err := unix.IoctlHIDGetRawInfo(fd)
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("HIDIOCGRAWINFO %s: %w", path, err)
	}

	// Best effort; some drivers report no name.
	name, _ := unix.IoctlHIDGetRawName(fd)

	return DeviceInfo{
		Path:      path,
		VendorID:  uint16(devinfo.Vendor),
		ProductID: uint16(devinfo.Product),
		Name:      strings.TrimRight(name, "\x00"),
	}, nil
}

// Open establishes a connection to a hidraw node and returns it together
// with the device identity.
func Open(path string) (*Conn, DeviceInfo, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, DeviceInfo{}, fmt.Errorf("open %s: %w", path, err)
	}

	// Probe through SyscallConn so the fd stays pollable and Close can
	// still unblock a pending read.
	var info DeviceInfo
	var probeErr error
	rc, err := f.SyscallConn()
	if err == nil {
		err = rc.Control(func(fd uintptr) {
			info, probeErr = probeFd(int(fd), path)
		})
	}
	if err == nil {
		err = probeErr
	}
	if err != nil {
		_ = f.Close()
		return nil, DeviceInfo{}, err
	}

	return &Conn{f: f}, info, nil
}
