// Package inventory defines the interface description the configurator
// consumes. The description is owned by whoever produces it (a cloud
// metadata source, an orchestrator, a hand-written plan file); this
// package only models it and loads plan files for the CLI.
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// IP4 is an IPv4 address with its dotted-quad netmask.
type IP4 struct {
	Address string `yaml:"address" json:"address"`
	Netmask string `yaml:"netmask" json:"netmask"`
}

// IP6 is an IPv6 address with its prefix length.
type IP6 struct {
	Address   string `yaml:"address" json:"address"`
	Prefixlen string `yaml:"prefixlen" json:"prefixlen"`
}

// Route is a static route. A network and netmask of 0.0.0.0 denote the
// default route.
type Route struct {
	Network string `yaml:"network" json:"network"`
	Netmask string `yaml:"netmask" json:"netmask"`
	Gateway string `yaml:"gateway" json:"gateway"`
}

// Interface describes the desired addressing for one network interface.
// Slices preserve the order the producer supplied.
type Interface struct {
	Name     string   `yaml:"name" json:"name"`
	Label    string   `yaml:"label,omitempty" json:"label,omitempty"`
	IP4s     []IP4    `yaml:"ip4s,omitempty" json:"ip4s,omitempty"`
	IP6s     []IP6    `yaml:"ip6s,omitempty" json:"ip6s,omitempty"`
	Routes   []Route  `yaml:"routes,omitempty" json:"routes,omitempty"`
	Gateway4 string   `yaml:"gateway4,omitempty" json:"gateway4,omitempty"`
	Gateway6 string   `yaml:"gateway6,omitempty" json:"gateway6,omitempty"`
	DNS      []string `yaml:"dns,omitempty" json:"dns,omitempty"`
}

// Plan is a full desired state: hostname plus interfaces.
type Plan struct {
	Hostname   string      `yaml:"hostname" json:"hostname"`
	Interfaces []Interface `yaml:"interfaces" json:"interfaces"`
}

// LoadPlan reads a plan file. YAML is the native format; .json files are
// decoded with encoding/json.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan Plan
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("failed to decode plan %s: %w", path, err)
		}
	} else {
		if err := yaml.UnmarshalStrict(data, &plan); err != nil {
			return nil, fmt.Errorf("failed to decode plan %s: %w", path, err)
		}
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", path, err)
	}
	return &plan, nil
}

// Validate checks the structural minimum: every interface is named, and
// no name repeats. Address-level problems (an unknown netmask, say) are
// deliberately left to surface at render time.
func (p *Plan) Validate() error {
	if p.Hostname == "" {
		return fmt.Errorf("hostname must not be empty")
	}
	seen := make(map[string]bool, len(p.Interfaces))
	for i, iface := range p.Interfaces {
		if iface.Name == "" {
			return fmt.Errorf("interface %d has no name", i)
		}
		if seen[iface.Name] {
			return fmt.Errorf("duplicate interface %q", iface.Name)
		}
		seen[iface.Name] = true
	}
	return nil
}
