package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/elivanov/inkwell/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds so a config file stays trivially editable.
type jsonConfig struct {
	BackendBaseURL    string `json:"backend_base_url"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	CredentialsPath   string `json:"credentials_path"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. When no file is named, it is a no-op. Read or unmarshal
// errors panic; config is resolved once at startup and a broken file should
// stop the program immediately.
//
// Only fields present in the file override cfg; absent fields keep their
// earlier values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.CredentialsPath != "" {
		cfg.CredentialsPath = jc.CredentialsPath
	}
}
