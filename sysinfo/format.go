// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"math"
	"net"
	"strings"

	"github.com/fatih/color"

	"catfetch/layout"
)

const gib = 1024 * 1024 * 1024

// Emphasis grades how alarming a usage percentage is.
type Emphasis int

// Emphasis levels, printed green, yellow and red.
const (
	Low Emphasis = iota
	Medium
	High
)

func (e Emphasis) String() string {
	switch e {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("Emphasis(%d)", int(e))
	}
}

// emphasisAttrs maps each emphasis to the colour it is printed in.
var emphasisAttrs = map[Emphasis]color.Attribute{
	Low:    color.FgGreen,
	Medium: color.FgYellow,
	High:   color.FgRed,
}

var (
	labelColor    = color.New(color.FgHiBlue)
	identityColor = color.New(color.FgHiGreen)
)

// vendorMarkers identify virtualisation pseudo-interfaces by name.
var vendorMarkers = []string{"VMware", "VirtualBox"}

// Palette rows printed below the facts.
var (
	brightPalette = []color.Attribute{
		color.FgHiRed, color.FgHiYellow, color.FgHiGreen, color.FgHiCyan,
		color.FgHiBlue, color.FgHiMagenta, color.FgHiBlack, color.FgHiWhite,
	}
	normalPalette = []color.Attribute{
		color.FgRed, color.FgYellow, color.FgGreen, color.FgCyan,
		color.FgBlue, color.FgMagenta, color.FgBlack, color.FgWhite,
	}
)

const paletteBlock = "███"

// Line is one row of the info block. Lines without a label are printed as
// their value alone.
type Line struct {
	Label string
	Value string
}

// String renders the line with its label padded to four columns.
func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return labelColor.Sprintf("%-4s", l.Label) + ": " + l.Value
}

// GiB converts a byte count to gibibytes.
func GiB(bytes uint64) float64 {
	return float64(bytes) / gib
}

// Emphasize grades a percentage: below 50 is Low, below 90 Medium, the rest
// High. NaN counts as 0.
func Emphasize(percent float64) Emphasis {
	switch {
	case math.IsNaN(percent) || percent < 50:
		return Low
	case percent < 90:
		return Medium
	default:
		return High
	}
}

// FormatPercent renders a percentage as "(12.3%)" coloured by its emphasis.
func FormatPercent(percent float64) string {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		percent = 0
	}
	return color.New(emphasisAttrs[Emphasize(percent)]).Sprintf("(%.1f%%)", percent)
}

// FormatUsage renders u as "used >> total GB (pct%)" in GiB.
//
// Example: 8 GiB of 16 GiB is "8.00 >> 16.00 GB (50.0%)".
func FormatUsage(u Usage) string {
	return fmt.Sprintf("%.2f >> %.2f GB %s", GiB(u.Used), GiB(u.Total), FormatPercent(u.Percent()))
}

func formatOptionalUsage(u *Usage) string {
	if u == nil {
		return Unknown
	}
	return FormatUsage(*u)
}

// FormatDisk renders a disk as "mount used >> total GB (pct%) fstype".
func FormatDisk(d Disk) string {
	s := d.Mountpoint + " " + FormatUsage(d.Usage)
	if d.Fstype != "" {
		s += " " + d.Fstype
	}
	return s
}

// isVirtual reports whether name belongs to a virtualisation vendor adapter.
func isVirtual(name string) bool {
	for _, m := range vendorMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// ipv4CIDR returns addr as "ip/prefix" when it is an IPv4 address. Bare
// addresses without a prefix are given /32.
func ipv4CIDR(addr string) (string, bool) {
	if ip, ipnet, err := net.ParseCIDR(addr); err == nil {
		if ip.To4() == nil {
			return "", false
		}
		ones, _ := ipnet.Mask.Size()
		return fmt.Sprintf("%s/%d", ip.To4(), ones), true
	}
	if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
		return ip.To4().String() + "/32", true
	}
	return "", false
}

// FormatNetworks lists the IPv4 addresses of real interfaces as
// "ip/prefix (name)" joined by ", ". Loopback, virtualisation adapters and
// interfaces without IPv4 are skipped; if nothing remains the result is
// "unknown".
func FormatNetworks(ifaces []Interface) string {
	var entries []string
	for _, iface := range ifaces {
		if isVirtual(iface.Name) || hasFlag(iface.Flags, "loopback") {
			continue
		}
		for _, addr := range iface.Addrs {
			if cidr, ok := ipv4CIDR(addr); ok {
				entries = append(entries, fmt.Sprintf("%s (%s)", cidr, iface.Name))
			}
		}
	}
	if len(entries) == 0 {
		return "unknown"
	}
	return strings.Join(entries, ", ")
}

// paletteRow renders one block per colour.
func paletteRow(attrs []color.Attribute) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(color.New(a).Sprint(paletteBlock))
	}
	return b.String()
}

// Lines formats info into the ordered rows of the info block.
func Lines(info *SystemInfo) []Line {
	identity := info.Username + "@" + info.Hostname

	lines := []Line{
		{Value: identityColor.Sprint(identity)},
		{Value: strings.Repeat("━", layout.VisibleWidth(identity))},
		{Label: "sys", Value: info.OSName + " " + info.OSVersion},
		{Label: "cpu", Value: info.CPU},
		{Label: "mem", Value: formatOptionalUsage(info.Memory)},
		{Label: "swap", Value: formatOptionalUsage(info.Swap)},
		{Label: "net", Value: FormatNetworks(info.Interfaces)},
	}
	for _, d := range info.Disks {
		lines = append(lines, Line{Label: "disk", Value: FormatDisk(d)})
	}
	lines = append(lines,
		Line{Value: paletteRow(brightPalette)},
		Line{Value: paletteRow(normalPalette)},
	)
	return lines
}

// Text joins the rendered lines with newlines.
func Text(lines []Line) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.String()
	}
	return strings.Join(rows, "\n")
}
