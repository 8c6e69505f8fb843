// Package config defines the agent configuration: the filesystem paths the
// generated files are written to and logging options. Every path is
// injectable so tests never touch the real /etc.
package config

import (
	"fmt"
	"path/filepath"
)

// Config is the root agent configuration.
type Config struct {
	Paths   *PathsConfig   `hcl:"paths,block" json:"paths,omitempty"`
	Logging *LoggingConfig `hcl:"logging,block" json:"logging,omitempty"`
}

// PathsConfig holds the target locations for generated files and the
// probes used for dialect and module selection.
type PathsConfig struct {
	// NetworkFile is the address/route specification.
	NetworkFile string `hcl:"network_file,optional" json:"network_file,omitempty"`
	// HostnameFile is the system hostname specification.
	HostnameFile string `hcl:"hostname_file,optional" json:"hostname_file,omitempty"`
	// ResolvFile is the hostname resolver specification.
	ResolvFile string `hcl:"resolv_file,optional" json:"resolv_file,omitempty"`
	// HostsFile is the local host resolution specification.
	HostsFile string `hcl:"hosts_file,optional" json:"hosts_file,omitempty"`
	// InitdDir holds the per-interface net.* init scripts.
	InitdDir string `hcl:"initd_dir,optional" json:"initd_dir,omitempty"`
	// RCBinary is probed to decide between the OpenRC and legacy
	// baselayout config dialects.
	RCBinary string `hcl:"rc_binary,optional" json:"rc_binary,omitempty"`
}

// LoggingConfig controls agent log output.
type LoggingConfig struct {
	Level string `hcl:"level,optional" json:"level,omitempty"`
	JSON  bool   `hcl:"json,optional" json:"json,omitempty"`
}

// Default returns a config populated with the standard Gentoo paths.
func Default() *Config {
	return &Config{
		Paths: &PathsConfig{
			NetworkFile:  "/etc/conf.d/net",
			HostnameFile: "/etc/conf.d/hostname",
			ResolvFile:   "/etc/resolv.conf",
			HostsFile:    "/etc/hosts",
			InitdDir:     "/etc/init.d",
			RCBinary:     "/sbin/rc",
		},
		Logging: &LoggingConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills any unset fields from Default(). Loaded configs only
// need to mention the paths they override.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Paths == nil {
		c.Paths = def.Paths
	} else {
		p, d := c.Paths, def.Paths
		if p.NetworkFile == "" {
			p.NetworkFile = d.NetworkFile
		}
		if p.HostnameFile == "" {
			p.HostnameFile = d.HostnameFile
		}
		if p.ResolvFile == "" {
			p.ResolvFile = d.ResolvFile
		}
		if p.HostsFile == "" {
			p.HostsFile = d.HostsFile
		}
		if p.InitdDir == "" {
			p.InitdDir = d.InitdDir
		}
		if p.RCBinary == "" {
			p.RCBinary = d.RCBinary
		}
	}
	if c.Logging == nil {
		c.Logging = def.Logging
	} else if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

// Validate checks that every configured path is usable.
func (c *Config) Validate() error {
	if c.Paths == nil {
		return fmt.Errorf("paths block missing")
	}
	paths := map[string]string{
		"network_file":  c.Paths.NetworkFile,
		"hostname_file": c.Paths.HostnameFile,
		"resolv_file":   c.Paths.ResolvFile,
		"hosts_file":    c.Paths.HostsFile,
		"initd_dir":     c.Paths.InitdDir,
		"rc_binary":     c.Paths.RCBinary,
	}
	for name, p := range paths {
		if p == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if !filepath.IsAbs(p) {
			return fmt.Errorf("%s must be an absolute path, got %q", name, p)
		}
	}
	return nil
}
