//go:build linux
// +build linux

package sysnet

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// LinkAddrs is the current addressing of one link.
type LinkAddrs struct {
	Name      string
	OperState string
	Addrs     []string
}

// Addresses lists every link with its operational state and assigned
// addresses, via netlink.
func Addresses() ([]LinkAddrs, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	var out []LinkAddrs
	for _, link := range links {
		la := LinkAddrs{
			Name:      link.Attrs().Name,
			OperState: link.Attrs().OperState.String(),
		}
		addrs, err := netlink.AddrList(link, netlink.FAMILY_ALL)
		if err != nil {
			return nil, fmt.Errorf("failed to list addresses on %s: %w", la.Name, err)
		}
		for _, a := range addrs {
			la.Addrs = append(la.Addrs, a.IPNet.String())
		}
		out = append(out, la)
	}
	return out, nil
}
