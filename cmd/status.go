package cmd

import (
	"fmt"
	"strings"

	"grimm.is/emergenet/internal/sysnet"
)

// RunStatus prints every link with its operational state and currently
// assigned addresses.
func RunStatus() error {
	links, err := sysnet.Addresses()
	if err != nil {
		return err
	}

	for _, link := range links {
		addrs := "-"
		if len(link.Addrs) > 0 {
			addrs = strings.Join(link.Addrs, " ")
		}
		fmt.Printf("%-12s %-8s %s\n", link.Name, link.OperState, addrs)
	}
	return nil
}
