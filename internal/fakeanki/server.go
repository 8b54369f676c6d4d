// Package fakeanki provides a fake AnkiConnect HTTP server for tests. It
// speaks the AnkiConnect envelope protocol and answers from pre-configured
// stub responses matched by action name, recording every request it sees.
package fakeanki

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/buger/jsonparser"
)

// Stub is a pre-configured response for one action. When Handler is set it
// takes precedence; otherwise Result/Err are returned as-is.
type Stub struct {
	// Result is marshaled into the result field of the envelope.
	Result any
	// Err, when non-empty, is returned as the raw error string.
	Err string
	// Handler computes the response from the raw request params.
	Handler func(params []byte) (result any, errMsg string)
}

// RecordedRequest is one request the server has seen.
type RecordedRequest struct {
	Action  string
	Version int64
	Params  []byte
}

// Server is a fake AnkiConnect endpoint backed by httptest.
type Server struct {
	mu       sync.Mutex
	stubs    map[string]Stub
	requests []RecordedRequest

	srv *httptest.Server
}

// New starts the fake server. Actions without a stub answer with the
// remote "unsupported action" error, like the real add-on.
func New() *Server {
	s := &Server{
		stubs: make(map[string]Stub),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL is the endpoint to point a connection at.
func (s *Server) URL() string {
	return s.srv.URL
}

func (s *Server) Close() {
	s.srv.Close()
}

// StubAction configures the response for an action, replacing any previous
// stub.
func (s *Server) StubAction(action string, stub Stub) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[action] = stub
}

// Requests returns the requests seen so far, in order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action, err := jsonparser.GetString(body, "action")
	if err != nil {
		http.Error(w, "missing action", http.StatusBadRequest)
		return
	}
	version, _ := jsonparser.GetInt(body, "version")

	var params []byte
	if raw, dataType, _, perr := jsonparser.Get(body, "params"); perr == nil && dataType == jsonparser.Object {
		params = append([]byte(nil), raw...)
	}

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Action:  action,
		Version: version,
		Params:  params,
	})
	stub, ok := s.stubs[action]
	s.mu.Unlock()

	if !ok {
		writeEnvelope(w, nil, "unsupported action")
		return
	}

	if stub.Handler != nil {
		result, errMsg := stub.Handler(params)
		writeEnvelope(w, result, errMsg)
		return
	}
	writeEnvelope(w, stub.Result, stub.Err)
}

func writeEnvelope(w http.ResponseWriter, result any, errMsg string) {
	envelope := struct {
		Result any     `json:"result"`
		Error  *string `json:"error"`
	}{Result: result}
	if errMsg != "" {
		envelope.Error = &errMsg
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
