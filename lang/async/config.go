package async

import "time"

// Config holds the tunables for a Driver, parsed from the environment by
// the maincmd driver (spec §4.6 leaves the worker-pool size and HTTP
// timeout as deployment knobs rather than language-level settings).
type Config struct {
	WorkerPoolSize int           `env:"HOOT_ASYNC_WORKERS" envDefault:"8"`
	HTTPTimeout    time.Duration `env:"HOOT_ASYNC_HTTP_TIMEOUT" envDefault:"30s"`
}
