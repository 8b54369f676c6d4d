// Package connection implements the transport boundary of the client: it
// sends a named AnkiConnect action with parameters and decodes the result,
// passing any remote error string through the classifier in
// [github.com/ankiconnect/ankiconnect.go/pkg/ankierr].
package connection

import "context"

// Connection sends actions to an AnkiConnect endpoint. Implementations
// must be safe for concurrent use.
type Connection interface {
	// Connect verifies the endpoint is reachable.
	Connect(ctx context.Context) error
	Close() error
	// Send issues the named action and decodes the result into res.
	// A nil res discards the result. Remote failures come back as
	// structured errors from the ankierr package.
	Send(ctx context.Context, res any, action string, params any) error
}

// Send issues an action on c and returns the decoded result. It exists so
// resource clients get a typed result without declaring a response struct
// per call site.
func Send[Result any](ctx context.Context, c Connection, action string, params any) (Result, error) {
	var res Result
	if err := c.Send(ctx, &res, action, params); err != nil {
		var zero Result
		return zero, err
	}
	return res, nil
}
