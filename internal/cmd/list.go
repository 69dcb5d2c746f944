package cmd

import (
	"fmt"
	"log/slog"

	"krakenmon/internal/hidraw"
	"krakenmon/pkg/hwmon"
)

// List prints every hidraw node and which ones a driver claims.
type List struct{}

func (l *List) Run(logger *slog.Logger) error {
	devices, err := hidraw.Enumerate()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("no hidraw devices found (missing permissions?)")
		return nil
	}

	for _, d := range devices {
		driver := "-"
		if reg, ok := hwmon.Lookup(d.VendorID, d.ProductID); ok {
			driver = reg.Name
		}
		fmt.Printf("%-14s %04x:%04x  %-10s %s\n", d.Path, d.VendorID, d.ProductID, driver, d.Name)
	}
	return nil
}
