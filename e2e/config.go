package e2e

import "github.com/kelseyhightower/envconfig"

// Config points the smoke test at a live broker and API. All fields empty
// means the test is skipped.
type Config struct {
	BrokerURL  string `envconfig:"CONSULT_E2E_BROKER_URL"`
	APIBaseURL string `envconfig:"CONSULT_E2E_API_BASE_URL"`
	AuthToken  string `envconfig:"CONSULT_E2E_AUTH_TOKEN"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
