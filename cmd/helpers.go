// Package cmd holds the entry points behind each CLI subcommand.
package cmd

import (
	"fmt"

	"grimm.is/emergenet/internal/config"
	"grimm.is/emergenet/internal/gentoo"
	"grimm.is/emergenet/internal/inventory"
	"grimm.is/emergenet/internal/logging"
	"grimm.is/emergenet/internal/sysexec"
	"grimm.is/emergenet/internal/sysnet"
)

// loadConfig loads the agent config and configures the default logger
// from its logging block.
func loadConfig(configFile string) (*config.Config, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.JSON = cfg.Logging.JSON
	logging.SetDefault(logging.New(logCfg))

	return cfg, nil
}

// loadPlan loads and validates a network plan file.
func loadPlan(planFile string) (*inventory.Plan, error) {
	if planFile == "" {
		return nil, fmt.Errorf("a plan file is required (-plan <file>)")
	}
	return inventory.LoadPlan(planFile)
}

// generateFiles renders the complete path -> content file set for a plan
// without touching the system. Shared by the render and diff commands.
func generateFiles(cfg *config.Config, plan *inventory.Plan, dialect gentoo.Dialect) (map[string]string, error) {
	renderer := gentoo.NewRenderer(sysexec.New(), nil)

	body, _, err := renderer.ConfdNet(plan.Interfaces, dialect)
	if err != nil {
		return nil, err
	}

	files := map[string]string{
		cfg.Paths.NetworkFile:  body,
		cfg.Paths.HostnameFile: renderer.HostnameFile(plan.Hostname),
		cfg.Paths.HostsFile:    sysnet.EtcHosts(plan.Interfaces, plan.Hostname),
	}
	if resolv := sysnet.ResolvConf(plan.Interfaces); resolv != "" {
		files[cfg.Paths.ResolvFile] = resolv
	}
	return files, nil
}
