package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the eshipz API root; the trackings path is appended by
	// the client.
	APIBaseURL string `env:"API_BASE_URL, default=https://app.eshipz.com"`
	// Token authenticates against eshipz via the X-API-TOKEN header.
	Token string `env:"ESHIPZ_TOKEN"`

	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// OpsAddr is the listen address for the health/metrics HTTP listener.
	// Empty disables it; MCP hosts may spawn several server instances, so a
	// fixed default port would collide.
	OpsAddr string `env:"OPS_ADDR"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
