//go:build linux
// +build linux

package sysnet

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SetHostname applies the hostname to the running kernel.
func SetHostname(name string) error {
	if err := unix.Sethostname([]byte(name)); err != nil {
		return fmt.Errorf("sethostname: %w", err)
	}
	return nil
}
