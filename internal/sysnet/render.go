package sysnet

import (
	"fmt"
	"strings"

	"grimm.is/emergenet/internal/inventory"
)

// ResolvConf renders the resolver specification from the interfaces'
// DNS entries, in interface order, first occurrence of a server wins.
// An empty string means no interface carries resolver addresses and the
// file should be left alone.
func ResolvConf(ifaces []inventory.Interface) string {
	var servers []string
	seen := make(map[string]bool)
	for _, iface := range ifaces {
		for _, ip := range iface.DNS {
			if seen[ip] {
				continue
			}
			seen[ip] = true
			servers = append(servers, ip)
		}
	}
	if len(servers) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, ip := range servers {
		fmt.Fprintf(&sb, "nameserver %s\n", ip)
	}
	return sb.String()
}

// EtcHosts renders the local host resolution specification: loopback
// entries plus one line per assigned IPv4 address mapping the hostname.
func EtcHosts(ifaces []inventory.Interface, hostname string) string {
	short := hostname
	if i := strings.IndexByte(hostname, '.'); i > 0 {
		short = hostname[:i]
	}

	var sb strings.Builder
	sb.WriteString("127.0.0.1\tlocalhost\n")
	sb.WriteString("::1\t\tlocalhost\n")
	for _, iface := range ifaces {
		for _, ip := range iface.IP4s {
			if short != hostname {
				fmt.Fprintf(&sb, "%s\t%s %s\n", ip.Address, hostname, short)
			} else {
				fmt.Fprintf(&sb, "%s\t%s\n", ip.Address, hostname)
			}
		}
	}
	return sb.String()
}
