package cmd

import (
	"fmt"

	"grimm.is/emergenet/internal/gentoo"
	"grimm.is/emergenet/internal/sysexec"
)

// RunRender prints the generated address/route specification to stdout
// without touching the system. An empty dialect means "detect from the
// host", exactly as apply would.
func RunRender(configFile, planFile, dialect string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	plan, err := loadPlan(planFile)
	if err != nil {
		return err
	}

	var d gentoo.Dialect
	if dialect == "" {
		d = gentoo.DetectDialect(cfg.Paths.RCBinary)
	} else {
		d = gentoo.DialectFromVersion(dialect)
	}

	renderer := gentoo.NewRenderer(sysexec.New(), nil)
	body, _, err := renderer.ConfdNet(plan.Interfaces, d)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Println(body)
	return nil
}
