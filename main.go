package main

import (
	"flag"
	"fmt"
	"os"

	"grimm.is/emergenet/cmd"
	"grimm.is/emergenet/internal/brand"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "apply":
		applyFlags := flag.NewFlagSet("apply", flag.ExitOnError)
		configFile := applyFlags.String("config", brand.DefaultConfigFile(), "Agent configuration file")
		applyFlags.StringVar(configFile, "c", brand.DefaultConfigFile(), "Agent configuration file (short)")
		planFile := applyFlags.String("plan", "", "Network plan file (YAML or JSON)")
		applyFlags.StringVar(planFile, "p", "", "Network plan file (short)")
		applyFlags.Parse(os.Args[2:])

		if err := cmd.RunApply(*configFile, *planFile); err != nil {
			fmt.Fprintf(os.Stderr, "Apply failed: %v\n", err)
			os.Exit(1)
		}

	case "render":
		renderFlags := flag.NewFlagSet("render", flag.ExitOnError)
		configFile := renderFlags.String("config", brand.DefaultConfigFile(), "Agent configuration file")
		renderFlags.StringVar(configFile, "c", brand.DefaultConfigFile(), "Agent configuration file (short)")
		planFile := renderFlags.String("plan", "", "Network plan file (YAML or JSON)")
		renderFlags.StringVar(planFile, "p", "", "Network plan file (short)")
		dialect := renderFlags.String("dialect", "", "Config dialect: openrc or legacy (default: detect)")
		renderFlags.StringVar(dialect, "d", "", "Config dialect (short)")
		renderFlags.Parse(os.Args[2:])

		if err := cmd.RunRender(*configFile, *planFile, *dialect); err != nil {
			fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
			os.Exit(1)
		}

	case "diff":
		diffFlags := flag.NewFlagSet("diff", flag.ExitOnError)
		configFile := diffFlags.String("config", brand.DefaultConfigFile(), "Agent configuration file")
		diffFlags.StringVar(configFile, "c", brand.DefaultConfigFile(), "Agent configuration file (short)")
		planFile := diffFlags.String("plan", "", "Network plan file (YAML or JSON)")
		diffFlags.StringVar(planFile, "p", "", "Network plan file (short)")
		diffFlags.Parse(os.Args[2:])

		if err := cmd.RunDiff(*configFile, *planFile); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

	case "hostname":
		hostnameFlags := flag.NewFlagSet("hostname", flag.ExitOnError)
		configFile := hostnameFlags.String("config", brand.DefaultConfigFile(), "Agent configuration file")
		hostnameFlags.StringVar(configFile, "c", brand.DefaultConfigFile(), "Agent configuration file (short)")
		hostnameFlags.Parse(os.Args[2:])

		if err := cmd.RunHostname(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

	case "status":
		if err := cmd.RunStatus(); err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}

	case "version", "-v", "--version":
		cmd.RunVersion()

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - %s

Usage:
  %s <command> [options]

Commands:
  apply     Write network config files, set the hostname, and restart
            the affected network services
            Options: --plan (-p) <file>, --config (-c) <file>
  render    Print the generated conf.d/net body without touching the system
            Options: --plan (-p) <file>, --config (-c) <file>,
                     --dialect (-d) openrc|legacy
  diff      Compare generated files against what is currently on disk
            Options: --plan (-p) <file>, --config (-c) <file>
  hostname  Print the hostname recorded in the hostname file
            Options: --config (-c) <file>
  status    Show current links and assigned addresses
  version   Show version information

Examples:
  %s apply -p /etc/emergenet/plan.yaml
  %s render -p plan.yaml -d legacy
  %s diff -p plan.yaml
`, brand.Name, brand.Description, brand.BinaryName, brand.BinaryName, brand.BinaryName, brand.BinaryName)
}
