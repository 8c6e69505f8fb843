//go:build !linux
// +build !linux

package sysnet

import "fmt"

// SetHostname applies the hostname to the running kernel (Stub).
func SetHostname(name string) error {
	return fmt.Errorf("setting the live hostname is only supported on linux")
}
