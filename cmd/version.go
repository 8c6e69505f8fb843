package cmd

import (
	"fmt"

	"grimm.is/emergenet/internal/brand"
)

// RunVersion prints the binary identity.
func RunVersion() {
	fmt.Printf("%s %s (%s)\n", brand.Name, brand.Version, brand.GitCommit)
}
