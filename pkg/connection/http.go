package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ankiconnect/ankiconnect.go/internal/codec"
	"github.com/ankiconnect/ankiconnect.go/pkg/ankierr"
	"github.com/ankiconnect/ankiconnect.go/pkg/logger"
)

// Request is the AnkiConnect action envelope.
type Request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// response is the AnkiConnect result envelope. Both fields are present in
// every response; exactly one is non-null.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// HTTPConnection speaks the AnkiConnect protocol: one HTTP POST per
// action, JSON request and response envelopes.
type HTTPConnection struct {
	baseURL     string
	marshaler   codec.Marshaler
	unmarshaler codec.Unmarshaler
	logger      logger.Logger

	httpClient *http.Client
}

// NewHTTPConnection builds a connection from the config, applying defaults
// for unset codec and logger fields.
func NewHTTPConnection(conf *Config) *HTTPConnection {
	c := &HTTPConnection{
		baseURL:     conf.BaseURL,
		marshaler:   conf.Marshaler,
		unmarshaler: conf.Unmarshaler,
		logger:      conf.Logger,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	if c.marshaler == nil {
		c.marshaler = codec.JSON{}
	}
	if c.unmarshaler == nil {
		c.unmarshaler = codec.JSON{}
	}
	if c.logger == nil {
		c.logger = logger.Nop()
	}
	return c
}

// SetTimeout replaces the per-request timeout.
func (h *HTTPConnection) SetTimeout(timeout time.Duration) *HTTPConnection {
	h.httpClient.Timeout = timeout
	return h
}

// SetHTTPClient replaces the underlying HTTP client.
func (h *HTTPConnection) SetHTTPClient(client *http.Client) *HTTPConnection {
	h.httpClient = client
	return h
}

// Connect pings the endpoint with the version action.
func (h *HTTPConnection) Connect(ctx context.Context) error {
	var version int
	if err := h.Send(ctx, &version, "version", nil); err != nil {
		return err
	}
	h.logger.Debug("connected to AnkiConnect", "version", version)
	return nil
}

func (h *HTTPConnection) Close() error {
	return nil
}

// Send posts the action envelope and decodes the response. A remote error
// string is classified into a structured error; transport failures are
// returned wrapped.
func (h *HTTPConnection) Send(ctx context.Context, res any, action string, params any) error {
	if err := h.preSendChecks(); err != nil {
		return err
	}

	body, err := h.marshaler.Marshal(Request{
		Action:  action,
		Version: Version,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	h.logger.Debug("sending action", "action", action)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending %s request: %w", action, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d for action %s", resp.StatusCode, action)
	}

	return h.decodeResponse(res, action, data)
}

func (h *HTTPConnection) preSendChecks() error {
	if h.baseURL == "" {
		return ErrNoBaseURL
	}
	if h.marshaler == nil {
		return ErrNoMarshaler
	}
	if h.unmarshaler == nil {
		return ErrNoUnmarshaler
	}
	return nil
}

func (h *HTTPConnection) decodeResponse(res any, action string, data []byte) error {
	var envelope response
	if err := h.unmarshaler.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decoding %s response: %w", action, err)
	}

	if envelope.Error != nil {
		structured := ankierr.Classify(*envelope.Error)
		if _, unrecognized := structured.(*ankierr.OtherError); unrecognized {
			h.logger.Warn("unrecognized error message", "action", action, "message", *envelope.Error)
		}
		return structured
	}

	if res == nil || len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := h.unmarshaler.Unmarshal(envelope.Result, res); err != nil {
		return fmt.Errorf("decoding %s result: %w", action, err)
	}
	return nil
}
