package cmd

import (
	"fmt"

	"grimm.is/emergenet/internal/gentoo"
)

// RunHostname prints the hostname recorded in the hostname file.
func RunHostname(configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	hostname, ok := gentoo.ReadHostname(cfg.Paths.HostnameFile)
	if !ok {
		return fmt.Errorf("no hostname recorded in %s", cfg.Paths.HostnameFile)
	}

	fmt.Println(hostname)
	return nil
}
