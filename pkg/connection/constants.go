package connection

import (
	"errors"
	"time"
)

const (
	// Version is the AnkiConnect API version spoken by this client.
	Version = 6
	// DefaultTimeout bounds a single HTTP request.
	DefaultTimeout = 10 * time.Second
)

var (
	ErrNoBaseURL     = errors.New("base url not set")
	ErrNoMarshaler   = errors.New("marshaler is not set")
	ErrNoUnmarshaler = errors.New("unmarshaler is not set")
)
