//go:build !unix && !windows

package sysinfo

func platformHostname() (string, error) {
	return "", errEmpty
}

func platformCPU() (string, error) {
	return "", errEmpty
}
