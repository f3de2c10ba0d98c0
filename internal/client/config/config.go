// Package config handles configuration for the BlogIt client: struct
// defaults, environment overrides, an optional JSON file, and
// command-line flags, each later source taking precedence.
package config

import "time"

// DefaultAPIBaseURL is the hard-coded backend endpoint used when no
// override is supplied.
const DefaultAPIBaseURL = "https://blogit-backend-cgu1.onrender.com"

// Config holds runtime settings for the BlogIt CLI.
//
// Fields:
//   - APIBaseURL: base endpoint of the backend REST service.
//   - AuthPrefix / APIPrefix: backend path-prefix convention. Deployed
//     backends disagree on prefixes, so both are configurable.
//   - StateDSN: path of the local sqlite state database.
//   - CacheTTL: how long a fetched cache entry stays usable.
type Config struct {
	APIBaseURL string
	AuthPrefix string
	APIPrefix  string
	StateDSN   string
	CacheTTL   time.Duration
}

// LoadDefaults populates c with the canonical defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.AuthPrefix = "/auth"
	c.APIPrefix = ""
	c.StateDSN = "blogit.db"
	c.CacheTTL = 30 * time.Second
}

// LoadConfig constructs a Config by applying defaults, then overlaying
// values from the environment, a JSON file (if -c/-config is given), and
// finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
