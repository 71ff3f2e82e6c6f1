package hwinfo

import (
	"os"
	"path/filepath"
	"sort"

	"hwdoctor/internal/common"
)

// userRelevantClasses are the sysfs classes shown by default in a device
// scan. A full scan walks every class directory.
var userRelevantClasses = []string{
	"block", "drm", "input", "net", "nvme", "sound", "thunderbolt", "watchdog",
}

// ScanDevices walks the sysfs class tree under root and reports each
// device with its bound driver where one exists. Unreadable directories
// are skipped silently; a host with no readable sysfs yields an empty list.
func ScanDevices(root string, full bool) []common.Device {
	if root == "" {
		root = DefaultSysfsRoot
	}

	classes := userRelevantClasses
	if full {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil
		}
		classes = classes[:0:0]
		for _, e := range entries {
			classes = append(classes, e.Name())
		}
	}

	src := NewClassSource(root)
	var devices []common.Device
	for _, class := range classes {
		devs, err := os.ReadDir(filepath.Join(root, class))
		if err != nil {
			continue
		}
		for _, dev := range devs {
			devices = append(devices, common.Device{
				Class:  class,
				Name:   dev.Name(),
				Driver: src.driverFor(class, dev.Name()),
			})
		}
	}

	sort.Slice(devices, func(i, j int) bool {
		if devices[i].Class != devices[j].Class {
			return devices[i].Class < devices[j].Class
		}
		return devices[i].Name < devices[j].Name
	})
	return devices
}
