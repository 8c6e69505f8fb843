package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPlanYAML(t *testing.T) {
	path := writePlan(t, "plan.yaml", `
hostname: gentoo-vm
interfaces:
  - name: eth0
    label: public
    ip4s:
      - address: 192.168.0.100
        netmask: 255.255.255.0
    routes:
      - network: 0.0.0.0
        netmask: 0.0.0.0
        gateway: 192.168.0.1
    gateway4: 192.168.0.1
    dns:
      - 8.8.8.8
  - name: eth1
    ip4s:
      - address: 10.0.0.5
        netmask: 255.255.0.0
`)

	plan, err := LoadPlan(path)
	require.NoError(t, err)

	assert.Equal(t, "gentoo-vm", plan.Hostname)
	require.Len(t, plan.Interfaces, 2)

	// Order is the order the file supplied.
	assert.Equal(t, "eth0", plan.Interfaces[0].Name)
	assert.Equal(t, "eth1", plan.Interfaces[1].Name)

	eth0 := plan.Interfaces[0]
	assert.Equal(t, "public", eth0.Label)
	require.Len(t, eth0.IP4s, 1)
	assert.Equal(t, "192.168.0.100", eth0.IP4s[0].Address)
	assert.Equal(t, "255.255.255.0", eth0.IP4s[0].Netmask)
	assert.Equal(t, "192.168.0.1", eth0.Gateway4)
	assert.Equal(t, []string{"8.8.8.8"}, eth0.DNS)
}

func TestLoadPlanJSON(t *testing.T) {
	path := writePlan(t, "plan.json", `{
  "hostname": "gentoo-vm",
  "interfaces": [
    {"name": "eth0", "ip6s": [{"address": "2001:db8::1", "prefixlen": "64"}]}
  ]
}`)

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	require.Len(t, plan.Interfaces, 1)
	assert.Equal(t, "2001:db8::1", plan.Interfaces[0].IP6s[0].Address)
	assert.Equal(t, "64", plan.Interfaces[0].IP6s[0].Prefixlen)
}

func TestLoadPlanRejectsUnknownFields(t *testing.T) {
	path := writePlan(t, "plan.yaml", `
hostname: h
interfaces:
  - name: eth0
    bogus_field: true
`)
	_, err := LoadPlan(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		plan    Plan
		wantErr string
	}{
		{
			name:    "missing hostname",
			plan:    Plan{Interfaces: []Interface{{Name: "eth0"}}},
			wantErr: "hostname",
		},
		{
			name:    "unnamed interface",
			plan:    Plan{Hostname: "h", Interfaces: []Interface{{}}},
			wantErr: "no name",
		},
		{
			name:    "duplicate interface",
			plan:    Plan{Hostname: "h", Interfaces: []Interface{{Name: "eth0"}, {Name: "eth0"}}},
			wantErr: "duplicate",
		},
		{
			name: "ok",
			plan: Plan{Hostname: "h", Interfaces: []Interface{{Name: "eth0"}, {Name: "eth1"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
