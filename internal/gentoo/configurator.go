package gentoo

import (
	"fmt"
	"os"
	"path/filepath"

	"grimm.is/emergenet/internal/config"
	"grimm.is/emergenet/internal/inventory"
	"grimm.is/emergenet/internal/logging"
	"grimm.is/emergenet/internal/sysexec"
	"grimm.is/emergenet/internal/sysnet"
)

// Apply status codes. The contract is deliberately coarse: success, or a
// server error with a human-readable message.
const (
	StatusOK          = 0
	StatusServerError = 500
)

// Configurator turns a desired state (hostname plus interfaces) into
// live system changes: it writes the generated files, sets the running
// hostname, and restarts each interface's net.* init script. Every
// collaborator is injectable for tests.
type Configurator struct {
	paths       *config.PathsConfig
	runner      sysexec.Runner
	renderer    *Renderer
	writeFiles  func(map[string]string) error
	setHostname func(string) error
	logger      *logging.Logger
}

// NewConfigurator creates a configurator wired to the real system.
func NewConfigurator(cfg *config.Config, logger *logging.Logger) *Configurator {
	runner := sysexec.New()
	return &Configurator{
		paths:       cfg.Paths,
		runner:      runner,
		renderer:    NewRenderer(runner, nil),
		writeFiles:  sysnet.WriteFiles,
		setHostname: sysnet.SetHostname,
		logger:      logger.WithComponent("apply"),
	}
}

// Apply renders and writes all configuration files, applies the hostname
// to the running system, and restarts the network service of every
// interface covered by the rendered config. It returns (0, "") on
// success or (500, message) on the first failure. There is no rollback:
// files already written and a hostname already set stay in place.
func (c *Configurator) Apply(hostname string, ifaces []inventory.Interface) (int, string) {
	dialect := DetectDialect(c.paths.RCBinary)
	c.logger.Debug("selected dialect", "dialect", string(dialect))

	body, names, err := c.renderer.ConfdNet(ifaces, dialect)
	if err != nil {
		return StatusServerError, fmt.Sprintf("Couldn't generate network config: %v", err)
	}

	files := map[string]string{
		c.paths.NetworkFile:  body,
		c.paths.HostnameFile: c.renderer.HostnameFile(hostname),
		c.paths.HostsFile:    sysnet.EtcHosts(ifaces, hostname),
	}
	if resolv := sysnet.ResolvConf(ifaces); resolv != "" {
		files[c.paths.ResolvFile] = resolv
	}

	if err := c.writeFiles(files); err != nil {
		return StatusServerError, fmt.Sprintf("Couldn't write config files: %v", err)
	}

	if err := c.setHostname(hostname); err != nil {
		c.logger.Error("couldn't set hostname", "error", err)
		return StatusServerError, fmt.Sprintf("Couldn't set hostname: %v", err)
	}

	for _, name := range names {
		if code, msg := c.restartInterface(name); code != StatusOK {
			return code, msg
		}
	}

	return StatusOK, ""
}

// restartInterface flushes the interface's current addresses, makes sure
// its init script exists, and restarts it.
func (c *Configurator) restartInterface(name string) (int, string) {
	if c.runner.LookPath("ip") {
		c.logger.Debug("flushing assigned addresses", "interface", name)
		code, err := c.runner.Run("ip", "address", "flush", "dev", name)
		if err != nil {
			return StatusServerError, fmt.Sprintf("Couldn't flush network %s: %v", name, err)
		}
		if code != 0 {
			return StatusServerError, fmt.Sprintf("Couldn't flush network %s: %d", name, code)
		}
	} else {
		c.logger.Warn("couldn't flush old network configuration as safeguard, required 'ip' command not present")
	}

	script := filepath.Join(c.paths.InitdDir, "net."+name)
	if _, err := os.Lstat(script); os.IsNotExist(err) {
		// Gentoo won't create these symlinks automatically.
		if err := os.Symlink("net.lo", script); err != nil {
			return StatusServerError, fmt.Sprintf("Couldn't create init script for %s: %v", name, err)
		}
	}

	c.logger.Debug("restarting network service", "script", script)
	code, err := c.runner.Run(script, "restart")
	if err != nil {
		return StatusServerError, fmt.Sprintf("Couldn't restart network %s: %v", name, err)
	}
	if code != 0 {
		return StatusServerError, fmt.Sprintf("Couldn't restart network %s: %d", name, code)
	}

	return StatusOK, ""
}
