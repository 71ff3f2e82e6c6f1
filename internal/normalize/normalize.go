// Package normalize rewrites volatile substrings in raw log lines to fixed
// placeholders so that structurally identical lines become identical text.
package normalize

import (
	"regexp"
	"strings"
)

// rule replaces every occurrence of a volatile token with a placeholder.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules run in order over the whole line. Order matters: MAC addresses must
// be rewritten before the port-suffix rule eats their colon groups.
var rules = []rule{
	{regexp.MustCompile(`(?i)0x[0-9a-f]+`), "0xADDR"},
	{regexp.MustCompile(`\[\d+\]`), "[PID]"},
	{regexp.MustCompile(`IRQ \d+`), "IRQ N"},
	{regexp.MustCompile(`CPU \d+`), "CPU N"},
	{regexp.MustCompile(`\bsd[a-z]\b`), "sdDEVICE"},
	{regexp.MustCompile(`nvme\d+n\d+`), "nvmeDEVICE"},
	{regexp.MustCompile(`\b(?:[0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}\b`), "MAC"},
	{regexp.MustCompile(`:\d+`), ":PORT"},
}

// Timestamp+host prefixes emitted by syslog-style daemons and journalctl
// with RFC3339 output. At most one prefix is stripped per line.
var timestampPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z]{2} {1,2}\d{1,2} \d{2}:\d{2}:\d{2} \S+ `),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?[+-]\d{2}:\d{2} \S+ `),
}

// Line converts a raw log line into its template form: the timestamp+host
// prefix is stripped and each volatile token is replaced by a placeholder.
// The result may be empty for lines that carry no message text.
func Line(s string) string {
	for _, p := range timestampPrefixes {
		if loc := p.FindStringIndex(s); loc != nil {
			s = s[loc[1]:]
			break
		}
	}
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}
	return strings.TrimSpace(s)
}
