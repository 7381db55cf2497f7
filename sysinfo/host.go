package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
)

// errEmpty reports a query that succeeded but returned nothing useful.
var errEmpty = errors.New("empty result")

// HostQuerier answers queries about the machine it runs on.
type HostQuerier struct{}

// NewHostQuerier returns a Querier backed by the operating system.
func NewHostQuerier() *HostQuerier {
	return &HostQuerier{}
}

var _ Querier = (*HostQuerier)(nil)

// User returns the name of the current user, consulting the environment when
// the account database is unavailable.
func (*HostQuerier) User(context.Context) (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Windows reports DOMAIN\name.
		if i := strings.LastIndexByte(u.Username, '\\'); i >= 0 {
			return u.Username[i+1:], nil
		}
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("current user: %w", errEmpty)
}

// Hostname returns the host name, falling back to a platform query when the
// standard lookup fails.
func (*HostQuerier) Hostname(context.Context) (string, error) {
	name, err := os.Hostname()
	if err == nil && name != "" {
		return name, nil
	}
	fallback, ferr := platformHostname()
	if ferr != nil {
		return "", fmt.Errorf("hostname: %w", errors.Join(err, ferr))
	}
	return fallback, nil
}

// OS returns the platform name and version, e.g. "ubuntu" and "24.04".
func (*HostQuerier) OS(ctx context.Context) (string, string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("host info: %w", err)
	}
	name := info.Platform
	if name == "" {
		name = info.OS
	}
	return name, info.PlatformVersion, nil
}

// CPU returns the brand string of the first processor.
func (*HostQuerier) CPU(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err == nil {
		for _, info := range infos {
			if name := strings.TrimSpace(info.ModelName); name != "" {
				return name, nil
			}
		}
		err = errEmpty
	}
	if name, ferr := platformCPU(); ferr == nil {
		return name, nil
	}
	return "", fmt.Errorf("cpu info: %w", err)
}

// Memory returns physical memory usage.
func (*HostQuerier) Memory(ctx context.Context) (Usage, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("virtual memory: %w", err)
	}
	return Usage{Used: vm.Used, Total: vm.Total}, nil
}

// Swap returns swap usage.
func (*HostQuerier) Swap(ctx context.Context) (Usage, error) {
	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("swap memory: %w", err)
	}
	return Usage{Used: sm.Used, Total: sm.Total}, nil
}

// Interfaces lists network interfaces with their addresses.
func (*HostQuerier) Interfaces(ctx context.Context) ([]Interface, error) {
	stats, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("network interfaces: %w", err)
	}
	ifaces := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{Name: s.Name, Flags: s.Flags}
		for _, a := range s.Addrs {
			iface.Addrs = append(iface.Addrs, a.Addr)
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}

// Disks lists physical partitions and their usage. Partitions whose usage
// cannot be read or is zero are skipped.
func (*HostQuerier) Disks(ctx context.Context) ([]Disk, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("disk partitions: %w", err)
	}
	var disks []Disk
	for _, p := range parts {
		u, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		fstype := p.Fstype
		if fstype == "" {
			fstype = u.Fstype
		}
		disks = append(disks, Disk{
			Mountpoint: p.Mountpoint,
			Fstype:     fstype,
			Usage:      Usage{Used: u.Used, Total: u.Total},
		})
	}
	return disks, nil
}
