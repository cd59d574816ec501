package config

import "path/filepath"

// Config holds runtime settings for the abook CLI.
//
// Fields:
//   - DataDir: directory holding the accounts file and all per-user data.
//   - AccountsFile: accounts file name, resolved relative to DataDir.
type Config struct {
	DataDir      string
	AccountsFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.AccountsFile = "accounts.txt"
}

// AccountsPath returns the full path of the accounts file.
func (c *Config) AccountsPath() string {
	return filepath.Join(c.DataDir, c.AccountsFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
