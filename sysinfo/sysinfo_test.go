package sysinfo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
)

var errDown = errors.New("query unavailable")

type fakeQuerier struct {
	user, host, osName, osVersion, cpu string
	mem, swap                          Usage
	ifaces                             []Interface
	disks                              []Disk
	err                                error
}

func (f *fakeQuerier) User(context.Context) (string, error) { return f.user, f.err }
func (f *fakeQuerier) Hostname(context.Context) (string, error) { return f.host, f.err }
func (f *fakeQuerier) OS(context.Context) (string, string, error) {
	return f.osName, f.osVersion, f.err
}
func (f *fakeQuerier) CPU(context.Context) (string, error) { return f.cpu, f.err }
func (f *fakeQuerier) Memory(context.Context) (Usage, error) { return f.mem, f.err }
func (f *fakeQuerier) Swap(context.Context) (Usage, error) { return f.swap, f.err }
func (f *fakeQuerier) Disks(context.Context) ([]Disk, error) { return f.disks, f.err }
func (f *fakeQuerier) Interfaces(context.Context) ([]Interface, error) {
	return f.ifaces, f.err
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCollect(t *testing.T) {
	q := &fakeQuerier{
		user: "alice", host: "box", osName: "debian", osVersion: "12", cpu: " Example CPU ",
		mem:    Usage{Used: 1, Total: 2},
		swap:   Usage{Used: 0, Total: 0},
		ifaces: []Interface{{Name: "eth0", Addrs: []string{"10.0.0.1/24"}}},
	}
	for i := 0; i < 7; i++ {
		q.disks = append(q.disks, Disk{Mountpoint: "/mnt", Usage: Usage{Used: 1, Total: 1}})
	}

	info := Collect(context.Background(), q, quiet)

	if info.Username != "alice" || info.Hostname != "box" {
		t.Fatalf("identity = %s@%s; want alice@box", info.Username, info.Hostname)
	}
	if info.OSName != "debian" || info.OSVersion != "12" {
		t.Fatalf("os = %q %q", info.OSName, info.OSVersion)
	}
	if info.CPU != "Example CPU" {
		t.Fatalf("cpu = %q; want trimmed brand", info.CPU)
	}
	if info.Memory == nil || *info.Memory != q.mem {
		t.Fatalf("memory = %v; want %v", info.Memory, q.mem)
	}
	if info.Swap == nil || info.Swap.Percent() != 0 {
		t.Fatalf("swap = %v; want zero usage", info.Swap)
	}
	if len(info.Disks) != MaxDisks {
		t.Fatalf("got %d disks; want %d", len(info.Disks), MaxDisks)
	}
	if got := FormatNetworks(info.Interfaces); got != "10.0.0.1/24 (eth0)" {
		t.Fatalf("network = %q", got)
	}
}

func TestCollectDegrades(t *testing.T) {
	info := Collect(context.Background(), &fakeQuerier{user: "ignored", err: errDown}, quiet)

	for field, v := range map[string]string{
		"user":       info.Username,
		"hostname":   info.Hostname,
		"os name":    info.OSName,
		"os version": info.OSVersion,
		"cpu":        info.CPU,
	} {
		if v != Unknown {
			t.Errorf("%s = %q; want %q", field, v, Unknown)
		}
	}
	if info.Memory != nil || info.Swap != nil {
		t.Fatalf("memory/swap should be unknown, got %v %v", info.Memory, info.Swap)
	}
	if len(info.Disks) != 0 {
		t.Fatalf("got %d disks; want none", len(info.Disks))
	}
	if got := FormatNetworks(info.Interfaces); got != "unknown" {
		t.Fatalf("network = %q; want unknown", got)
	}

	lines := Lines(info)
	if got := lines[4].String(); got != "mem : Unknown" {
		t.Fatalf("memory line = %q", got)
	}
}

func TestCollectEmptyValues(t *testing.T) {
	info := Collect(context.Background(), &fakeQuerier{osName: "linux"}, nil)
	if info.Hostname != Unknown || info.CPU != Unknown {
		t.Fatalf("empty results should degrade: host=%q cpu=%q", info.Hostname, info.CPU)
	}
	if info.OSName != "linux" || info.OSVersion != Unknown {
		t.Fatalf("os = %q %q; want linux Unknown", info.OSName, info.OSVersion)
	}
}

func TestUsagePercent(t *testing.T) {
	if p := (Usage{Used: 5, Total: 0}).Percent(); p != 0 {
		t.Fatalf("Percent with zero total = %v; want 0", p)
	}
	if p := (Usage{Used: 1, Total: 4}).Percent(); p != 25 {
		t.Fatalf("Percent = %v; want 25", p)
	}
}

func TestHostQuerierHostname(t *testing.T) {
	name, err := NewHostQuerier().Hostname(context.Background())
	if err != nil {
		t.Skipf("no hostname on this machine: %v", err)
	}
	if name == "" {
		t.Fatalf("Hostname returned an empty name without error")
	}
}

func TestHostQuerierInterfaces(t *testing.T) {
	ifaces, err := NewHostQuerier().Interfaces(context.Background())
	if err != nil {
		t.Skipf("interfaces unavailable: %v", err)
	}
	for _, iface := range ifaces {
		if iface.Name == "" {
			t.Errorf("interface without a name: %+v", iface)
		}
		for _, addr := range iface.Addrs {
			if _, _, err := net.ParseCIDR(addr); err != nil {
				t.Errorf("%s: address %q is not CIDR: %v", iface.Name, addr, err)
			}
		}
	}
}

func TestHostQuerierDisks(t *testing.T) {
	q := NewHostQuerier()
	disks, err := q.Disks(context.Background())
	if err != nil {
		t.Skipf("disks unavailable: %v", err)
	}
	for _, d := range disks {
		if d.Mountpoint == "" {
			t.Errorf("disk without a mount point: %+v", d)
		}
		if d.Usage.Total == 0 {
			t.Errorf("%s: zero-sized disk was not skipped", d.Mountpoint)
		}
	}

	info := Collect(context.Background(), q, quiet)
	if len(info.Disks) > MaxDisks {
		t.Fatalf("Collect kept %d disks; want at most %d", len(info.Disks), MaxDisks)
	}
}
