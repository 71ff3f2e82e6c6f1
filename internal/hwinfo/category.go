// Package hwinfo resolves which kernel driver backs each hardware category
// by merging readings from several prioritized, independently unreliable
// sources into one cached record.
package hwinfo

// Category identifies a hardware class whose backing driver is resolved.
type Category int

const (
	CategoryGPU Category = iota
	CategoryNetwork
	CategoryAudio
	CategoryStorage
	CategoryUSBController
	CategoryThunderbolt
	CategoryInput
	CategoryPlatform
	CategoryVirtual
	CategoryNVMe
	CategorySATA
	CategoryRAID
	CategoryI2C
	CategorySMBus
	CategoryWatchdog

	categoryCount
)

// Categories lists every category in resolution and serialization order.
var Categories = []Category{
	CategoryGPU,
	CategoryNetwork,
	CategoryAudio,
	CategoryStorage,
	CategoryUSBController,
	CategoryThunderbolt,
	CategoryInput,
	CategoryPlatform,
	CategoryVirtual,
	CategoryNVMe,
	CategorySATA,
	CategoryRAID,
	CategoryI2C,
	CategorySMBus,
	CategoryWatchdog,
}

var categoryNames = [categoryCount]string{
	"GPU",
	"Network",
	"Audio",
	"Storage",
	"USB Controller",
	"Thunderbolt",
	"Input",
	"Platform",
	"Virtual",
	"NVMe",
	"SATA",
	"RAID",
	"I2C",
	"SMBus",
	"Watchdog",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "Unknown"
	}
	return categoryNames[c]
}

// Accumulating reports whether values from every source are collected for
// this category. Multiple network interfaces or input devices with
// different drivers are legitimate and should all be reported; every other
// category has a single authoritative driver.
func (c Category) Accumulating() bool {
	return c == CategoryNetwork || c == CategoryInput
}
