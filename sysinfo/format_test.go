package sysinfo

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestEmphasize(t *testing.T) {
	tests := []struct {
		in   float64
		want Emphasis
	}{
		{0, Low},
		{49.9, Low},
		{50.0, Medium},
		{89.9, Medium},
		{90.0, High},
		{100, High},
		{math.NaN(), Low},
	}

	for _, tc := range tests {
		if got := Emphasize(tc.in); got != tc.want {
			t.Errorf("Emphasize(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercentColour(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	tests := []struct {
		in   float64
		want string
	}{
		{49.9, "\x1b[32m(49.9%)\x1b[0m"},
		{50.0, "\x1b[33m(50.0%)\x1b[0m"},
		{90.0, "\x1b[31m(90.0%)\x1b[0m"},
	}
	for _, tc := range tests {
		if got := FormatPercent(tc.in); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercentNaN(t *testing.T) {
	if got := FormatPercent(math.NaN()); got != "(0.0%)" {
		t.Fatalf("FormatPercent(NaN) = %q; want (0.0%%)", got)
	}
}

func TestFormatUsage(t *testing.T) {
	tests := []struct {
		in   Usage
		want string
	}{
		{Usage{Used: 8 * gib, Total: 16 * gib}, "8.00 >> 16.00 GB (50.0%)"},
		{Usage{Used: 0, Total: 0}, "0.00 >> 0.00 GB (0.0%)"},
		{Usage{Used: gib / 2, Total: 2 * gib}, "0.50 >> 2.00 GB (25.0%)"},
	}

	for _, tc := range tests {
		if got := FormatUsage(tc.in); got != tc.want {
			t.Errorf("FormatUsage(%+v) = %q; want %q", tc.in, got, tc.want)
		}
	}
	if e := Emphasize(Usage{Used: 8 * gib, Total: 16 * gib}.Percent()); e != Medium {
		t.Fatalf("8 of 16 GiB graded %v; want medium", e)
	}
}

func TestFormatDisk(t *testing.T) {
	d := Disk{Mountpoint: "/", Fstype: "ext4", Usage: Usage{Used: 95 * gib, Total: 100 * gib}}
	if got, want := FormatDisk(d), "/ 95.00 >> 100.00 GB (95.0%) ext4"; got != want {
		t.Fatalf("FormatDisk = %q; want %q", got, want)
	}
}

func TestFormatNetworks(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []Interface
		want   string
	}{
		{"none", nil, "unknown"},
		{
			"single",
			[]Interface{{Name: "eth0", Flags: []string{"up"}, Addrs: []string{"192.168.1.10/24", "fe80::1/64"}}},
			"192.168.1.10/24 (eth0)",
		},
		{
			"several",
			[]Interface{
				{Name: "eth0", Addrs: []string{"10.0.0.2/8"}},
				{Name: "wlan0", Addrs: []string{"172.16.4.7/16"}},
			},
			"10.0.0.2/8 (eth0), 172.16.4.7/16 (wlan0)",
		},
		{
			"vmware only",
			[]Interface{{Name: "VMware Network Adapter", Addrs: []string{"192.168.56.1/24"}}},
			"unknown",
		},
		{
			"vmware skipped",
			[]Interface{
				{Name: "VMware Network Adapter VMnet8", Addrs: []string{"192.168.56.1/24"}},
				{Name: "Ethernet", Addrs: []string{"192.168.0.5/24"}},
			},
			"192.168.0.5/24 (Ethernet)",
		},
		{"ipv6 only", []Interface{{Name: "eth1", Addrs: []string{"2001:db8::1/64"}}}, "unknown"},
		{"loopback", []Interface{{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: []string{"127.0.0.1/8"}}}, "unknown"},
		{"bare address", []Interface{{Name: "tun0", Addrs: []string{"10.8.0.1"}}}, "10.8.0.1/32 (tun0)"},
		{"garbage", []Interface{{Name: "eth0", Addrs: []string{"not-an-ip"}}}, "unknown"},
	}

	for _, tc := range tests {
		if got := FormatNetworks(tc.ifaces); got != tc.want {
			t.Errorf("%s: FormatNetworks = %q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestLineString(t *testing.T) {
	if got := (Line{Label: "cpu", Value: "x"}).String(); got != "cpu : x" {
		t.Fatalf("labelled line = %q", got)
	}
	if got := (Line{Label: "swap", Value: "y"}).String(); got != "swap: y" {
		t.Fatalf("labelled line = %q", got)
	}
	if got := (Line{Value: "z"}).String(); got != "z" {
		t.Fatalf("bare line = %q", got)
	}
}

func TestLines(t *testing.T) {
	info := &SystemInfo{
		Username:  "alice",
		Hostname:  "box",
		OSName:    "ubuntu",
		OSVersion: "24.04",
		CPU:       "Example CPU",
		Memory:    &Usage{Used: 8 * gib, Total: 16 * gib},
		Interfaces: []Interface{
			{Name: "eth0", Addrs: []string{"192.168.1.10/24"}},
		},
		Disks: []Disk{
			{Mountpoint: "/", Fstype: "ext4", Usage: Usage{Used: gib, Total: 4 * gib}},
		},
	}

	got := Text(Lines(info))
	want := strings.Join([]string{
		"alice@box",
		"━━━━━━━━━",
		"sys : ubuntu 24.04",
		"cpu : Example CPU",
		"mem : 8.00 >> 16.00 GB (50.0%)",
		"swap: Unknown",
		"net : 192.168.1.10/24 (eth0)",
		"disk: / 1.00 >> 4.00 GB (25.0%) ext4",
		strings.Repeat(paletteBlock, 8),
		strings.Repeat(paletteBlock, 8),
	}, "\n")
	if got != want {
		t.Fatalf("Text(Lines) =\n%s\nwant\n%s", got, want)
	}
}

func TestRuleIgnoresLocaleWidth(t *testing.T) {
	// Simulate a CJK locale, where ambiguous-width runes count double.
	prev := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	defer func() { runewidth.DefaultCondition.EastAsianWidth = prev }()

	info := &SystemInfo{Username: "josé", Hostname: "box"}
	rule := Lines(info)[1].Value
	if got := strings.Count(rule, "━"); got != 8 {
		t.Fatalf("rule has %d segments; want 8 for %q", got, "josé@box")
	}
}
