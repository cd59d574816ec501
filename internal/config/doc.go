// Package config loads runtime configuration for the abook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory (accounts file and per-user files live here)
//	-f string   accounts file name inside the data directory
//
// # JSON schema
//
//	{
//	  "data_dir": "data",
//	  "accounts_file": "accounts.txt"
//	}
package config
