//go:build !linux
// +build !linux

package sysnet

import "fmt"

// LinkAddrs is the current addressing of one link.
type LinkAddrs struct {
	Name      string
	OperState string
	Addrs     []string
}

// Addresses lists every link with its assigned addresses (Stub).
func Addresses() ([]LinkAddrs, error) {
	return nil, fmt.Errorf("address inspection is only supported on linux")
}
