package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/blogit-app/blogit-cli/internal/flagx"
	"github.com/blogit-app/blogit-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the file can write "cache_ttl": "30s". Parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL string         `json:"api_base_url"`
	AuthPrefix *string        `json:"auth_prefix"`
	APIPrefix  *string        `json:"api_prefix"`
	StateDSN   string         `json:"state_db"`
	CacheTTL   timex.Duration `json:"cache_ttl"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Without the flag nothing is loaded. Read or unmarshal
// errors panic, matching the loader's fail-fast startup behavior.
//
// Prefix fields are pointers so an explicit empty prefix ("") in the file
// is distinguishable from an omitted field.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AuthPrefix != nil {
		cfg.AuthPrefix = *jc.AuthPrefix
	}
	if jc.APIPrefix != nil {
		cfg.APIPrefix = *jc.APIPrefix
	}
	if jc.StateDSN != "" {
		cfg.StateDSN = jc.StateDSN
	}
	if jc.CacheTTL.Duration != 0 {
		cfg.CacheTTL = time.Duration(jc.CacheTTL.Duration)
	}
}
