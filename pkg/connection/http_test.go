package connection

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ankiconnect/ankiconnect.go/pkg/ankierr"
)

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// NewTestClient returns an *http.Client with its transport replaced so no
// real calls are made.
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

type HTTPTestSuite struct {
	suite.Suite
}

func TestHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPTestSuite))
}

func (s *HTTPTestSuite) newConnection(fn RoundTripFunc) *HTTPConnection {
	conn := NewHTTPConnection(NewConfig("localhost", 8765))
	conn.SetHTTPClient(NewTestClient(fn))
	return conn
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func (s *HTTPTestSuite) TestSendDecodesResult() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		s.Assert().Equal("http://localhost:8765", req.URL.String())
		s.Assert().Equal(http.MethodPost, req.Method)
		s.Assert().Equal("application/json", req.Header.Get("Content-Type"))

		body, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		s.Assert().JSONEq(`{"action":"version","version":6}`, string(body))

		return jsonResponse(200, `{"result": 6, "error": null}`)
	})

	var version int
	err := conn.Send(context.Background(), &version, "version", nil)
	s.Require().NoError(err)
	s.Assert().Equal(6, version)
}

func (s *HTTPTestSuite) TestSendSerializesParams() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		body, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		s.Assert().JSONEq(
			`{"action":"createDeck","version":6,"params":{"deck":"Spanish"}}`,
			string(body),
		)
		return jsonResponse(200, `{"result": 101, "error": null}`)
	})

	var id uint64
	err := conn.Send(context.Background(), &id, "createDeck", map[string]string{"deck": "Spanish"})
	s.Require().NoError(err)
	s.Assert().Equal(uint64(101), id)
}

func (s *HTTPTestSuite) TestSendClassifiesRemoteError() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"result": null, "error": "deck was not found: Missing"}`)
	})

	var id uint64
	err := conn.Send(context.Background(), &id, "createDeck", map[string]string{"deck": "Missing"})

	var deckErr *ankierr.DeckNotFoundError
	s.Require().True(errors.As(err, &deckErr))
	s.Assert().Equal("Missing", deckErr.Deck)
}

func (s *HTTPTestSuite) TestSendPassesThroughUnrecognizedError() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"result": null, "error": "collection is not available"}`)
	})

	err := conn.Send(context.Background(), nil, "sync", nil)

	var otherErr *ankierr.OtherError
	s.Require().True(errors.As(err, &otherErr))
	s.Assert().Equal("collection is not available", otherErr.Message)
}

func (s *HTTPTestSuite) TestSendNilResultDiscardsBody() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"result": [1, 2, 3], "error": null}`)
	})

	err := conn.Send(context.Background(), nil, "deleteNotes", nil)
	s.Require().NoError(err)
}

func (s *HTTPTestSuite) TestSendNullResultLeavesDestinationZero() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"result": null, "error": null}`)
	})

	var names []string
	err := conn.Send(context.Background(), &names, "deckNames", nil)
	s.Require().NoError(err)
	s.Assert().Nil(names)
}

func (s *HTTPTestSuite) TestSendRejectsUnexpectedStatus() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(500, `boom`)
	})

	err := conn.Send(context.Background(), nil, "version", nil)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "unexpected status 500")
}

func (s *HTTPTestSuite) TestSendRequiresBaseURL() {
	conn := NewHTTPConnection(&Config{})

	err := conn.Send(context.Background(), nil, "version", nil)
	s.Assert().ErrorIs(err, ErrNoBaseURL)
}

func TestSendHelperReturnsTypedResult(t *testing.T) {
	conn := NewHTTPConnection(NewConfig("localhost", 8765))
	conn.SetHTTPClient(NewTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"result": ["Default", "Spanish"], "error": null}`)
	}))

	names, err := Send[[]string](context.Background(), conn, "deckNames", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "Default" || names[1] != "Spanish" {
		t.Errorf("unexpected names %v", names)
	}
}
