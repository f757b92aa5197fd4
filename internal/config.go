package internal

import "time"

// Config holds the client environment. BROKER_URL is the websocket
// endpoint of the message broker; API_BASE_URL the REST root.
type Config struct {
	BrokerURL         string        `env:"BROKER_URL,required=true"`
	APIBaseURL        string        `env:"API_BASE_URL,required=true"`
	AuthToken         string        `env:"AUTH_TOKEN,required=true"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	RefetchDelay      time.Duration `env:"REFETCH_DELAY,default=1s"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
}
