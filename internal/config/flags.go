package config

import (
	"flag"
	"os"

	"github.com/abookhq/abook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory (default from Config)
//	-f string   accounts file name (default from Config)
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// components are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.AccountsFile, "f", cfg.AccountsFile, "accounts file name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
