package hwinfo

import (
	"os"
	"path/filepath"
	"regexp"
)

// DefaultBusRoot is where the kernel exposes bus driver registrations.
const DefaultBusRoot = "/sys/bus"

// busProbe describes where on the bus tree a category's drivers register
// and which registered driver names count as a hit.
type busProbe struct {
	bus     string
	pattern *regexp.Regexp
}

var busProbes = map[Category]busProbe{
	CategoryUSBController: {"pci", regexp.MustCompile(`^(xhci|ehci|ohci|uhci)`)},
	CategoryNVMe:          {"pci", regexp.MustCompile(`^nvme`)},
	CategorySATA:          {"pci", regexp.MustCompile(`^(ahci|ata_piix|sata_)`)},
	CategoryRAID:          {"pci", regexp.MustCompile(`^(megaraid|mpt3sas|aacraid)`)},
	CategorySMBus:         {"pci", regexp.MustCompile(`smbus|i801`)},
	CategoryI2C:           {"i2c", regexp.MustCompile(`.`)},
	CategoryInput:         {"serio", regexp.MustCompile(`.`)},
	CategoryWatchdog:      {"platform", regexp.MustCompile(`wdt|watchdog`)},
	CategoryVirtual:       {"virtio", regexp.MustCompile(`.`)},
	CategoryThunderbolt:   {"thunderbolt", regexp.MustCompile(`.`)},
}

// BusSource answers from sysfs bus-level driver listings: a driver
// registered on the right bus with a recognizable name is taken as the
// category's driver. Less precise than class links since registration does
// not prove a bound device.
type BusSource struct {
	root string
}

// NewBusSource reads bus registrations under root (DefaultBusRoot in
// production; tests point it at a fixture tree).
func NewBusSource(root string) *BusSource {
	if root == "" {
		root = DefaultBusRoot
	}
	return &BusSource{root: root}
}

func (s *BusSource) Name() string { return "sysfs-bus" }

func (s *BusSource) Lookup(c Category) (string, bool) {
	probe, ok := busProbes[c]
	if !ok {
		return "", false
	}

	entries, err := os.ReadDir(filepath.Join(s.root, probe.bus, "drivers"))
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if probe.pattern.MatchString(e.Name()) {
			return e.Name(), true
		}
	}
	return "", false
}
