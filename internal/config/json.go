package config

import (
	"encoding/json"
	"os"

	"github.com/abookhq/abook/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// non-empty values are copied into the runtime Config.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	AccountsFile string `json:"accounts_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is taken from the -c or -config flags via
// flagx.JsonConfigFlags(); if neither is given, nothing is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.AccountsFile != "" {
		cfg.AccountsFile = jc.AccountsFile
	}
}
