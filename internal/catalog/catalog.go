// Package catalog holds the static category catalog the fuzzy matcher
// resolves free-text queries against. Entry order is load-bearing: earlier
// entries win ties.
package catalog

import "strings"

// Entry describes one matchable hardware category.
type Entry struct {
	Name     string   // display name
	Keyword  string   // primary keyword, used for edit-distance matching
	Keywords []string // descriptive keyword set, used for substring matching
}

// KeywordText returns the entry's keywords joined for substring search.
func (e Entry) KeywordText() string {
	return strings.Join(e.Keywords, " ")
}

// Entries is the fixed, ordered catalog.
var Entries = []Entry{
	{"GPU", "graphics", []string{"gpu", "graphics", "video", "display", "drm"}},
	{"Network", "network", []string{"network", "ethernet", "wireless", "lan", "nic"}},
	{"Audio", "sound", []string{"audio", "sound", "speaker", "alsa", "headphone"}},
	{"Storage", "storage", []string{"storage", "disk", "block", "drive"}},
	{"USB Controller", "usb", []string{"usb", "xhci", "controller", "hub"}},
	{"Thunderbolt", "thunderbolt", []string{"thunderbolt", "usb4", "dock"}},
	{"Input", "input", []string{"input", "keyboard", "mouse", "touchpad", "trackpoint"}},
	{"Platform", "platform", []string{"platform", "acpi", "firmware", "bios", "embedded"}},
	{"Virtual", "virtual", []string{"virtual", "virtio", "hypervisor", "guest"}},
	{"NVMe", "nvme", []string{"nvme", "pcie storage", "flash"}},
	{"SATA", "sata", []string{"sata", "ahci", "ata"}},
	{"RAID", "raid", []string{"raid", "mdadm", "array"}},
	{"I2C", "i2c", []string{"i2c", "smbus adapter", "sensor bus"}},
	{"SMBus", "smbus", []string{"smbus", "system management bus"}},
	{"Watchdog", "watchdog", []string{"watchdog", "wdt", "hang detection"}},
}

// Aliases maps common shorthand to a canonical keyword searched for in the
// keyword sets.
var Aliases = map[string]string{
	"gfx":  "graphics",
	"vga":  "graphics",
	"wifi": "wireless",
	"eth":  "ethernet",
	"net":  "network",
	"snd":  "sound",
	"hdd":  "disk",
	"ssd":  "nvme",
	"kbd":  "keyboard",
	"tb":   "thunderbolt",
	"vm":   "virtual",
	"wdt":  "watchdog",
	"md":   "mdadm",
}
