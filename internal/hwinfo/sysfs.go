package hwinfo

import (
	"os"
	"path/filepath"
)

// DefaultSysfsRoot is where the kernel exposes device classes.
const DefaultSysfsRoot = "/sys/class"

// classDirs maps categories to the sysfs class directories that carry
// their devices. Categories without an entry are not answerable from
// structured class data.
var classDirs = map[Category][]string{
	CategoryGPU:         {"drm"},
	CategoryNetwork:     {"net"},
	CategoryAudio:       {"sound"},
	CategoryStorage:     {"block"},
	CategoryInput:       {"input"},
	CategoryNVMe:        {"nvme"},
	CategoryThunderbolt: {"thunderbolt"},
	CategoryWatchdog:    {"watchdog"},
	CategoryI2C:         {"i2c-adapter", "i2c-dev"},
}

// ClassesFor returns the sysfs class directories carrying a category's
// devices, or nil for categories without structured class data.
func ClassesFor(c Category) []string {
	return classDirs[c]
}

// ClassSource answers from sysfs device-class driver links. It is the most
// trustworthy source when present: the kernel itself declares which driver
// is bound to each device.
type ClassSource struct {
	root string
}

// NewClassSource reads device classes under root (DefaultSysfsRoot in
// production; tests point it at a fixture tree).
func NewClassSource(root string) *ClassSource {
	if root == "" {
		root = DefaultSysfsRoot
	}
	return &ClassSource{root: root}
}

func (s *ClassSource) Name() string { return "sysfs-class" }

// Lookup walks the category's class directories and returns the first
// bound driver it finds. Missing directories and unreadable links are
// treated as absence, never as errors.
func (s *ClassSource) Lookup(c Category) (string, bool) {
	dirs, ok := classDirs[c]
	if !ok {
		return "", false
	}

	for _, class := range dirs {
		devs, err := os.ReadDir(filepath.Join(s.root, class))
		if err != nil {
			continue
		}
		for _, dev := range devs {
			if drv := s.driverFor(class, dev.Name()); drv != "" {
				return drv, true
			}
		}
	}
	return "", false
}

// driverFor resolves the driver symlink for one class device. Both the
// device-level link (<dev>/device/driver) and the direct link
// (<dev>/driver) shapes occur in the wild.
func (s *ClassSource) driverFor(class, dev string) string {
	for _, link := range []string{
		filepath.Join(s.root, class, dev, "device", "driver"),
		filepath.Join(s.root, class, dev, "driver"),
	} {
		target, err := os.Readlink(link)
		if err != nil {
			continue
		}
		return filepath.Base(target)
	}
	return ""
}
