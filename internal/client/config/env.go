package config

import "os"

// Environment variable names. BLOGIT_API_URL is the base-URL override;
// absent, the hard-coded default endpoint is used.
const (
	apiURLEnvVar     = "BLOGIT_API_URL"
	authPrefixEnvVar = "BLOGIT_AUTH_PREFIX"
	apiPrefixEnvVar  = "BLOGIT_API_PREFIX"
	stateDSNEnvVar   = "BLOGIT_STATE_DB"
)

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the existing value in place.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(apiURLEnvVar); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(authPrefixEnvVar); ok {
		cfg.AuthPrefix = v
	}
	if v, ok := os.LookupEnv(apiPrefixEnvVar); ok {
		cfg.APIPrefix = v
	}
	if v, ok := os.LookupEnv(stateDSNEnvVar); ok {
		cfg.StateDSN = v
	}
}
