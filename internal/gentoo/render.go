// Package gentoo generates Gentoo's network configuration files and
// applies them to a running system. The address/route specification under
// /etc/conf.d/net comes in two dialects: the quoted string blocks OpenRC
// understands and the shell arrays of the legacy baselayout.
package gentoo

import (
	"fmt"
	"os"
	"strings"

	"grimm.is/emergenet/internal/brand"
	"grimm.is/emergenet/internal/clock"
	"grimm.is/emergenet/internal/inventory"
	"grimm.is/emergenet/internal/sysexec"
	"grimm.is/emergenet/internal/sysnet"
)

// Dialect selects the conf.d/net syntax.
type Dialect string

const (
	DialectOpenRC Dialect = "openrc"
	DialectLegacy Dialect = "legacy"
)

const zeroAddr = "0.0.0.0"

// DetectDialect probes for the OpenRC control binary. Hosts without it
// get the legacy baselayout syntax.
func DetectDialect(rcBinary string) Dialect {
	if fi, err := os.Stat(rcBinary); err == nil && !fi.IsDir() {
		return DialectOpenRC
	}
	return DialectLegacy
}

// DialectFromVersion maps a caller-supplied version string onto a
// dialect: "openrc" selects OpenRC, anything else selects legacy.
func DialectFromVersion(version string) Dialect {
	if version == string(DialectOpenRC) {
		return DialectOpenRC
	}
	return DialectLegacy
}

// Renderer produces configuration file bodies. It consults the runner
// only to probe whether an iproute2-style `ip` command exists, which
// decides the modules= line.
type Renderer struct {
	runner sysexec.Runner
	clock  clock.Clock
}

// NewRenderer creates a renderer. A nil clock means system time.
func NewRenderer(runner sysexec.Runner, clk clock.Clock) *Renderer {
	if clk == nil {
		clk = &clock.RealClock{}
	}
	return &Renderer{runner: runner, clock: clk}
}

// header is the shared comment block prepended to every generated file.
func (r *Renderer) header() string {
	return fmt.Sprintf("# This file was autogenerated at %s by %s.\n"+
		"# It can still be managed manually, but any manual change may be\n"+
		"# overwritten the next time configuration is applied.",
		r.clock.Now().Format("2006-01-02 15:04:05"), brand.BinaryName)
}

// ConfdNet renders the address/route specification for every interface,
// in the order supplied, and returns the body together with the names of
// the interfaces it covers. Rendering fails on an IPv4 netmask with no
// known prefix length.
func (r *Renderer) ConfdNet(ifaces []inventory.Interface, dialect Dialect) (string, []string, error) {
	lines := []string{r.header(), ""}
	if r.runner.LookPath("ip") {
		lines = append(lines, `modules="iproute2"`)
	} else {
		lines = append(lines, `modules="ifconfig"`)
	}
	lines = append(lines, "", "")

	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		var err error
		if dialect == DialectOpenRC {
			lines, err = appendOpenRC(lines, iface)
		} else {
			lines, err = appendLegacy(lines, iface)
		}
		if err != nil {
			return "", nil, err
		}
		names = append(names, iface.Name)
	}

	return strings.Join(lines, "\n"), names, nil
}

// InterfaceFiles renders the file set for the given interfaces, keyed by
// short file name. version "openrc" selects the OpenRC dialect; any other
// value selects legacy.
func (r *Renderer) InterfaceFiles(ifaces []inventory.Interface, version string) (map[string]string, error) {
	body, _, err := r.ConfdNet(ifaces, DialectFromVersion(version))
	if err != nil {
		return nil, err
	}
	return map[string]string{"net": body}, nil
}

// explicitRoute reports whether a route renders as a discrete line.
// The default route is suppressed when it duplicates the interface's
// declared gateway4; the rule never consults gateway6, so a default
// route pointing at the IPv6 gateway still renders explicitly next to
// the synthesized "default via" line.
func explicitRoute(route inventory.Route, iface inventory.Interface) bool {
	if route.Network == zeroAddr && route.Netmask == zeroAddr &&
		iface.Gateway4 != "" && route.Gateway == iface.Gateway4 {
		return false
	}
	return true
}

func appendOpenRC(lines []string, iface inventory.Interface) ([]string, error) {
	if iface.Label != "" {
		lines = append(lines, fmt.Sprintf("# Label %s", iface.Label))
	}

	lines = append(lines, fmt.Sprintf("config_%s=\"", iface.Name))
	for _, ip := range iface.IP4s {
		prefix, ok := sysnet.PrefixLen(ip.Netmask)
		if !ok {
			return nil, fmt.Errorf("no prefix length known for netmask %q on %s", ip.Netmask, iface.Name)
		}
		lines = append(lines, fmt.Sprintf("  %s/%d", ip.Address, prefix))
	}
	for _, ip := range iface.IP6s {
		lines = append(lines, fmt.Sprintf("  %s/%s", ip.Address, ip.Prefixlen))
	}
	lines = append(lines, "\"", "")

	lines = append(lines, fmt.Sprintf("routes_%s=\"", iface.Name))
	for _, route := range iface.Routes {
		if !explicitRoute(route, iface) {
			continue
		}
		prefix, ok := sysnet.PrefixLen(route.Netmask)
		if !ok {
			return nil, fmt.Errorf("no prefix length known for netmask %q on %s", route.Netmask, iface.Name)
		}
		lines = append(lines, fmt.Sprintf("  %s/%d via %s", route.Network, prefix, route.Gateway))
	}
	if iface.Gateway4 != "" {
		lines = append(lines, fmt.Sprintf("  default via %s", iface.Gateway4))
	}
	if iface.Gateway6 != "" {
		lines = append(lines, fmt.Sprintf("  default via %s", iface.Gateway6))
	}
	lines = append(lines, "\"", "")

	if len(iface.DNS) > 0 {
		lines = append(lines,
			fmt.Sprintf("dns_servers_%s=\"%s\"\n", iface.Name, strings.Join(iface.DNS, "\n")),
			"")
	}

	return lines, nil
}

func appendLegacy(lines []string, iface inventory.Interface) ([]string, error) {
	if iface.Label != "" {
		lines = append(lines, fmt.Sprintf("# Label %s", iface.Label))
	}

	lines = append(lines, fmt.Sprintf("config_%s=(", iface.Name))
	for _, ip := range iface.IP4s {
		lines = append(lines, fmt.Sprintf("  \"%s netmask %s\"", ip.Address, ip.Netmask))
	}
	for _, ip := range iface.IP6s {
		lines = append(lines, fmt.Sprintf("  \"%s/%s\"", ip.Address, ip.Prefixlen))
	}
	lines = append(lines, ")", "")

	lines = append(lines, fmt.Sprintf("routes_%s=(", iface.Name))
	for _, route := range iface.Routes {
		if !explicitRoute(route, iface) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  \"%s netmask %s gw %s\"", route.Network, route.Netmask, route.Gateway))
	}
	if iface.Gateway4 != "" {
		lines = append(lines, fmt.Sprintf("  \"default via %s\"", iface.Gateway4))
	}
	if iface.Gateway6 != "" {
		lines = append(lines, fmt.Sprintf("  \"default via %s\"", iface.Gateway6))
	}
	lines = append(lines, ")", "")

	if len(iface.DNS) > 0 {
		lines = append(lines, fmt.Sprintf("dns_servers_%s=(", iface.Name))
		for _, dns := range iface.DNS {
			lines = append(lines, fmt.Sprintf(" \"%s\"", dns))
		}
		lines = append(lines, ")", "")
	}

	return lines, nil
}
