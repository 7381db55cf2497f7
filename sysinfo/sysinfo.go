// Package sysinfo gathers facts about the local host and formats them into
// the labelled lines shown next to the logo.
//
// Every fact is optional: a query that fails or returns nothing degrades the
// corresponding field to a placeholder instead of aborting the run.
package sysinfo

import (
	"context"
	"log/slog"
	"strings"
)

// Unknown is the placeholder for a fact that could not be determined.
const Unknown = "Unknown"

// MaxDisks caps the number of disk lines.
const MaxDisks = 5

// Usage is a used/total pair of byte counts.
type Usage struct {
	Used  uint64
	Total uint64
}

// Percent returns used/total as a percentage, or 0 when total is 0.
func (u Usage) Percent() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Total) * 100
}

// Interface is a network interface as reported by the OS.
type Interface struct {
	Name string
	// Flags holds lower-case flag names such as "up" and "loopback".
	Flags []string
	// Addrs holds addresses in CIDR notation, IPv4 and IPv6 mixed.
	Addrs []string
}

// Disk is a mounted filesystem and its usage.
type Disk struct {
	Mountpoint string
	Fstype     string
	Usage      Usage
}

// Querier is the source of host facts. Each method returns an error when
// the fact is unavailable on this host.
type Querier interface {
	User(ctx context.Context) (string, error)
	Hostname(ctx context.Context) (string, error)
	OS(ctx context.Context) (name, version string, err error)
	CPU(ctx context.Context) (string, error)
	Memory(ctx context.Context) (Usage, error)
	Swap(ctx context.Context) (Usage, error)
	Interfaces(ctx context.Context) ([]Interface, error)
	Disks(ctx context.Context) ([]Disk, error)
}

// SystemInfo holds the collected facts. String fields are never empty; they
// hold Unknown when their query failed.
type SystemInfo struct {
	Username  string
	Hostname  string
	OSName    string
	OSVersion string
	CPU       string

	// Memory and Swap are nil when unavailable.
	Memory *Usage
	Swap   *Usage

	// Interfaces is nil when the interface query failed.
	Interfaces []Interface

	// Disks holds at most MaxDisks entries.
	Disks []Disk
}

// Collect queries q once for every fact and returns the result. It never
// fails; unavailable facts are logged at debug level and left as placeholders.
func Collect(ctx context.Context, q Querier, logger *slog.Logger) *SystemInfo {
	if logger == nil {
		logger = slog.Default()
	}
	info := &SystemInfo{}

	text := func(field, v string, err error) string {
		v = strings.TrimSpace(v)
		if err != nil || v == "" {
			logger.Debug("field unavailable", "field", field, "err", err)
			return Unknown
		}
		return v
	}

	user, err := q.User(ctx)
	info.Username = text("user", user, err)

	host, err := q.Hostname(ctx)
	info.Hostname = text("hostname", host, err)

	name, version, err := q.OS(ctx)
	info.OSName = text("os name", name, err)
	info.OSVersion = text("os version", version, err)

	cpu, err := q.CPU(ctx)
	info.CPU = text("cpu", cpu, err)

	if m, err := q.Memory(ctx); err != nil {
		logger.Debug("field unavailable", "field", "memory", "err", err)
	} else {
		info.Memory = &m
	}

	if s, err := q.Swap(ctx); err != nil {
		logger.Debug("field unavailable", "field", "swap", "err", err)
	} else {
		info.Swap = &s
	}

	if ifaces, err := q.Interfaces(ctx); err != nil {
		logger.Debug("field unavailable", "field", "network", "err", err)
	} else {
		info.Interfaces = ifaces
	}

	disks, err := q.Disks(ctx)
	if err != nil {
		logger.Debug("field unavailable", "field", "disks", "err", err)
	}
	if len(disks) > MaxDisks {
		disks = disks[:MaxDisks]
	}
	info.Disks = disks

	return info
}
