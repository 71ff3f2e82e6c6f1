package hwinfo

import (
	"regexp"
	"strings"
)

// pciClassPatterns match the device-class text lspci prints for each
// category. Categories without an entry cannot be answered from PCI
// enumeration (input devices, for example, are not PCI functions).
var pciClassPatterns = map[Category]*regexp.Regexp{
	CategoryGPU:           regexp.MustCompile(`(?i)vga|3d controller|display controller`),
	CategoryNetwork:       regexp.MustCompile(`(?i)ethernet controller|network controller`),
	CategoryAudio:         regexp.MustCompile(`(?i)audio device|multimedia audio`),
	CategoryStorage:       regexp.MustCompile(`(?i)mass storage|ide interface`),
	CategoryUSBController: regexp.MustCompile(`(?i)usb controller`),
	CategoryThunderbolt:   regexp.MustCompile(`(?i)thunderbolt|usb4`),
	CategoryPlatform:      regexp.MustCompile(`(?i)isa bridge|host bridge`),
	CategoryVirtual:       regexp.MustCompile(`(?i)virtio`),
	CategoryNVMe:          regexp.MustCompile(`(?i)non-volatile memory controller`),
	CategorySATA:          regexp.MustCompile(`(?i)sata controller`),
	CategoryRAID:          regexp.MustCompile(`(?i)raid bus controller`),
	CategorySMBus:         regexp.MustCompile(`(?i)smbus`),
}

const driverInUsePrefix = "Kernel driver in use:"

// PCISource answers from `lspci -k` output: device lines keyed by class
// text, followed by indented attribute lines naming the bound driver. The
// raw output is fetched once per session through the cache.
type PCISource struct {
	cache *SessionCache
	fetch func() string
}

// NewPCISource builds a source over a fetch function that returns raw
// `lspci -k` output, or "" when the command is unavailable. The fetch runs
// at most once; the result is memoized in cache.
func NewPCISource(cache *SessionCache, fetch func() string) *PCISource {
	return &PCISource{cache: cache, fetch: fetch}
}

func (s *PCISource) Name() string { return "lspci" }

func (s *PCISource) Lookup(c Category) (string, bool) {
	pattern, ok := pciClassPatterns[c]
	if !ok {
		return "", false
	}

	raw := s.cache.Fetch("lspci", s.fetch)
	if raw == "" {
		return "", false
	}

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		// Device lines start at column zero; attribute lines are indented.
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		if !pattern.MatchString(line) {
			continue
		}
		if drv := driverForBlock(lines, i+1); drv != "" {
			return drv, true
		}
	}
	return "", false
}

// driverForBlock scans the indented attribute lines following a device
// line for the bound driver.
func driverForBlock(lines []string, start int) string {
	for _, line := range lines[start:] {
		if line == "" || (line[0] != ' ' && line[0] != '\t') {
			return ""
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, driverInUsePrefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, driverInUsePrefix))
		}
	}
	return ""
}
