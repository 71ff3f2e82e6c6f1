package hwinfo

import (
	"os"
	"strings"
)

// DefaultModulesPath is the kernel's loaded-module listing.
const DefaultModulesPath = "/proc/modules"

// modulePrefixes maps categories to known module name prefixes. The least
// precise source: a loaded module only suggests the category is driven by
// it, so this runs last in priority order.
var modulePrefixes = map[Category][]string{
	CategoryGPU:           {"i915", "amdgpu", "radeon", "nouveau", "nvidia"},
	CategoryNetwork:       {"e1000", "igb", "igc", "r8169", "iwlwifi", "ath9k", "ath10k", "ath11k", "rtw88", "rtw89"},
	CategoryAudio:         {"snd_hda_intel", "snd_sof", "snd_usb_audio"},
	CategoryStorage:       {"sd_mod", "ahci", "usb_storage"},
	CategoryUSBController: {"xhci_hcd", "xhci_pci", "ehci_hcd", "ehci_pci", "ohci_hcd"},
	CategoryThunderbolt:   {"thunderbolt"},
	CategoryInput:         {"usbhid", "hid_generic", "psmouse", "atkbd"},
	CategoryPlatform:      {"intel_pmc", "thinkpad_acpi", "dell_laptop", "asus_wmi"},
	CategoryVirtual:       {"virtio", "vboxguest", "vmw_", "hv_"},
	CategoryNVMe:          {"nvme"},
	CategorySATA:          {"ahci", "ata_piix", "libata"},
	CategoryRAID:          {"md_mod", "raid0", "raid1", "raid456", "dm_raid", "megaraid"},
	CategoryI2C:           {"i2c_i801", "i2c_dev", "i2c_designware"},
	CategorySMBus:         {"i2c_i801", "i2c_smbus"},
	CategoryWatchdog:      {"itco_wdt", "iTCO_wdt", "sp5100_tco", "wdat_wdt"},
}

// ModuleSource answers from the loaded kernel module list by name
// heuristics. It also reports the total module count for the record.
type ModuleSource struct {
	cache *SessionCache
	path  string
}

// NewModuleSource reads the module list from path (DefaultModulesPath in
// production; tests point it at a fixture file). The file is read once per
// session through the cache.
func NewModuleSource(cache *SessionCache, path string) *ModuleSource {
	if path == "" {
		path = DefaultModulesPath
	}
	return &ModuleSource{cache: cache, path: path}
}

func (s *ModuleSource) Name() string { return "kmod" }

func (s *ModuleSource) Lookup(c Category) (string, bool) {
	prefixes, ok := modulePrefixes[c]
	if !ok {
		return "", false
	}

	for _, mod := range s.modules() {
		for _, prefix := range prefixes {
			if strings.HasPrefix(mod, prefix) {
				return mod, true
			}
		}
	}
	return "", false
}

// ModuleCount returns the number of loaded kernel modules.
func (s *ModuleSource) ModuleCount() int {
	return len(s.modules())
}

// modules parses the first field of each /proc/modules line.
func (s *ModuleSource) modules() []string {
	raw := s.cache.Fetch("kmod:"+s.path, func() string {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return ""
		}
		return string(data)
	})
	if raw == "" {
		return nil
	}

	var names []string
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			names = append(names, fields[0])
		}
	}
	return names
}
