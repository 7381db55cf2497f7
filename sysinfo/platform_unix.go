//go:build unix

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// platformHostname reads the node name from uname(2).
func platformHostname() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	name := unix.ByteSliceToString(uts.Nodename[:])
	if name == "" {
		return "", fmt.Errorf("uname nodename: %w", errEmpty)
	}
	return name, nil
}

// platformCPU has no fallback beyond gopsutil on unix.
func platformCPU() (string, error) {
	return "", errEmpty
}
