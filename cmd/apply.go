package cmd

import (
	"fmt"
	"os"

	"grimm.is/emergenet/internal/gentoo"
	"grimm.is/emergenet/internal/logging"
)

// RunApply loads the agent config and a network plan, then applies the
// full desired state to the running system.
func RunApply(configFile, planFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	plan, err := loadPlan(planFile)
	if err != nil {
		return err
	}

	if os.Geteuid() != 0 {
		logging.Warn("not running as root, applying configuration will likely fail")
	}

	configurator := gentoo.NewConfigurator(cfg, logging.Default())
	code, msg := configurator.Apply(plan.Hostname, plan.Interfaces)
	if code != gentoo.StatusOK {
		return fmt.Errorf("apply failed (%d): %s", code, msg)
	}

	fmt.Printf("Applied network configuration for %d interface(s), hostname %q\n",
		len(plan.Interfaces), plan.Hostname)
	return nil
}
