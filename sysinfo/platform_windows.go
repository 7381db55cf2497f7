//go:build windows

package sysinfo

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// platformHostname asks the Win32 API for the NetBIOS computer name.
func platformHostname() (string, error) {
	name, err := windows.ComputerName()
	if err != nil {
		return "", fmt.Errorf("computer name: %w", err)
	}
	if name == "" {
		return "", fmt.Errorf("computer name: %w", errEmpty)
	}
	return name, nil
}

// platformCPU reads the processor brand string from the registry.
func platformCPU() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\CentralProcessor\0`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open cpu key: %w", err)
	}
	defer func() { _ = k.Close() }()

	name, _, err := k.GetStringValue("ProcessorNameString")
	if err != nil {
		return "", fmt.Errorf("read cpu name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("cpu name: %w", errEmpty)
	}
	return name, nil
}
