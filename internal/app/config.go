package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/projectboard/internal/adapters/otel"
	"github.com/emiliopalmerini/projectboard/internal/adapters/prometheus"
	"github.com/emiliopalmerini/projectboard/internal/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. PROJECTBOARD_ADDR.
const EnvPrefix = "PROJECTBOARD"

// Config is loaded from the environment. Fields carry no explicit envconfig
// names: an explicit name doubles as an unprefixed fallback key, which would
// let host variables such as PATH or LEVEL leak in.
type Config struct {
	Addr            string        `default:":8080"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`

	Log     logging.Config
	OTEL    otel.Config
	Metrics prometheus.Config
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
