package ankiconnect

import (
	"context"
	"errors"

	"github.com/ankiconnect/ankiconnect.go/pkg/connection"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 8765
)

// ErrNoteNotFound is returned when an operation refers to a note id the
// collection does not contain.
var ErrNoteNotFound = errors.New("note not found")

// Client is the entry point of the library. It groups the AnkiConnect
// actions into resource clients sharing one connection.
type Client struct {
	conn connection.Connection

	cards  *CardsClient
	decks  *DecksClient
	media  *MediaClient
	models *ModelsClient
}

// New returns a client for the default endpoint (localhost:8765).
func New() *Client {
	return NewWithAddress(DefaultHost, DefaultPort)
}

// NewWithAddress returns a client for the AnkiConnect endpoint at
// host:port.
func NewWithAddress(host string, port int) *Client {
	return FromConnection(connection.NewHTTPConnection(connection.NewConfig(host, port)))
}

// FromConnection builds a client on an existing connection. Useful for
// custom transports and for tests.
func FromConnection(conn connection.Connection) *Client {
	return &Client{
		conn:   conn,
		cards:  &CardsClient{conn: conn},
		decks:  &DecksClient{conn: conn},
		media:  &MediaClient{conn: conn},
		models: &ModelsClient{conn: conn},
	}
}

// Connect verifies the endpoint is reachable.
func (c *Client) Connect(ctx context.Context) error {
	return c.conn.Connect(ctx)
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Version returns the AnkiConnect plugin version.
func (c *Client) Version(ctx context.Context) (int, error) {
	return connection.Send[int](ctx, c.conn, "version", nil)
}

// Cards accesses card and note operations.
func (c *Client) Cards() *CardsClient {
	return c.cards
}

// Decks accesses deck operations.
func (c *Client) Decks() *DecksClient {
	return c.decks
}

// Media accesses media file operations.
func (c *Client) Media() *MediaClient {
	return c.media
}

// Models accesses note type operations.
func (c *Client) Models() *ModelsClient {
	return c.models
}
