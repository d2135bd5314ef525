package configs

import "time"

// HTTP configures the API server. Port is the TCP port to bind;
// ShutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
type HTTP struct {
	Port              uint16        `env:"PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
