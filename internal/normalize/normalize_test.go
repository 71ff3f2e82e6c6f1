package normalize

import "testing"

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "hex address",
			in:   "BUG: unable to handle kernel paging at 0xffff8801deadbeef",
			want: "BUG: unable to handle kernel paging at 0xADDR",
		},
		{
			name: "hex address uppercase",
			in:   "fault at 0XDEADBEEF",
			want: "fault at 0xADDR",
		},
		{
			name: "bracketed pid",
			in:   "systemd[1234]: service crashed",
			want: "systemd[PID]: service crashed",
		},
		{
			name: "irq and cpu numbers",
			in:   "IRQ 42 bound to CPU 3",
			want: "IRQ N bound to CPU N",
		},
		{
			name: "scsi device name",
			in:   "I/O error on sdb sector 12",
			want: "I/O error on sdDEVICE sector 12",
		},
		{
			name: "nvme device name",
			in:   "nvme0n1: read failure",
			want: "nvmeDEVICE: read failure",
		},
		{
			name: "mac address",
			in:   "link up on de:ad:be:ef:00:01",
			want: "link up on MAC",
		},
		{
			name: "port suffix",
			in:   "connection refused from 10.0.0.1:8080",
			want: "connection refused from 10.0.0.1:PORT",
		},
		{
			name: "syslog prefix stripped",
			in:   "Mar  4 12:01:02 myhost kernel: oops at 0x1f",
			want: "kernel: oops at 0xADDR",
		},
		{
			name: "rfc3339 prefix stripped",
			in:   "2025-03-04T12:01:02+01:00 myhost kernel: oops",
			want: "kernel: oops",
		},
		{
			name: "only one prefix stripped",
			in:   "Mar  4 12:01:02 host1 2025-03-04T12:01:02+01:00 trailing",
			want: "2025-03-04T12:PORT:PORT+01:PORT trailing",
		},
		{
			name: "no prefix untouched",
			in:   "usb 1-1: device descriptor read error",
			want: "usb 1-1: device descriptor read error",
		},
		{
			name: "empty line",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.in); got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLineRuleOrder(t *testing.T) {
	// The MAC rule must win over the port-suffix rule for colon groups.
	got := Line("peer aa:bb:cc:dd:ee:ff port :443")
	want := "peer MAC port :PORT"
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}
