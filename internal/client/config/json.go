package config

import (
	"encoding/json"
	"os"

	"github.com/vortextv/vortexcli/internal/flagx"
	"github.com/vortextv/vortexcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30m"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL           string         `json:"api_base_url"`
	AuthTimeout          timex.Duration `json:"auth_timeout"`
	TokenRefreshInterval timex.Duration `json:"token_refresh_interval"`
	CodeGenTimeout       timex.Duration `json:"codegen_timeout"`
	Debug                *bool          `json:"debug"`
	DatabasePath         string         `json:"database_path"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Absent file path means no JSON stage. Only fields
// present in the file override earlier stages. Panics on read or unmarshal
// errors, matching the fail-fast contract of startup configuration.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AuthTimeout.Duration != 0 {
		cfg.AuthTimeout = jc.AuthTimeout.Duration
	}
	if jc.TokenRefreshInterval.Duration != 0 {
		cfg.TokenRefreshInterval = jc.TokenRefreshInterval.Duration
	}
	if jc.CodeGenTimeout.Duration != 0 {
		cfg.CodeGenTimeout = jc.CodeGenTimeout.Duration
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
