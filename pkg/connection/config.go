package connection

import (
	"fmt"

	"github.com/ankiconnect/ankiconnect.go/internal/codec"
	"github.com/ankiconnect/ankiconnect.go/pkg/logger"
)

// Config carries everything an HTTP connection needs. Zero fields are
// filled with defaults by [NewHTTPConnection].
type Config struct {
	// BaseURL is the AnkiConnect endpoint, e.g. "http://localhost:8765".
	BaseURL     string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	Logger      logger.Logger
}

// NewConfig returns a config for the AnkiConnect endpoint at host:port
// with the JSON codec and a silent logger.
func NewConfig(host string, port int) *Config {
	return &Config{
		BaseURL:     fmt.Sprintf("http://%s:%d", host, port),
		Marshaler:   codec.JSON{},
		Unmarshaler: codec.JSON{},
		Logger:      logger.Nop(),
	}
}
