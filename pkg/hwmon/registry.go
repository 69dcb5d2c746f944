package hwmon

import (
	"sync"
)

// Registration describes a supported device model: its stable consumer-facing
// name and a factory for a fresh Device instance.
type Registration struct {
	Name string
	New  func() Device
}

type deviceID struct {
	vendor, product uint16
}

var (
	registry   = make(map[deviceID]Registration)
	registryMu sync.RWMutex
)

// Register adds a driver for the given USB vendor/product id.
// This should be called from driver package init() functions.
func Register(vendorID, productID uint16, reg Registration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[deviceID{vendorID, productID}] = reg
}

// Lookup returns the registration matching a vendor/product id, if any.
func Lookup(vendorID, productID uint16) (Registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := registry[deviceID{vendorID, productID}]
	return reg, ok
}

// SupportedNames returns the names of all registered drivers.
func SupportedNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, reg := range registry {
		names = append(names, reg.Name)
	}
	return names
}
