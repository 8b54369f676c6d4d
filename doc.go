// The [ankiconnect] package is a typed Go client for the [AnkiConnect]
// add-on, which exposes Anki over a local HTTP endpoint.
//
// # Client
//
// [New] connects to the default endpoint (localhost:8765). Functionality
// is grouped into resource clients reachable from [Client]: [CardsClient],
// [DecksClient], [MediaClient], and [ModelsClient].
//
// # Building notes and queries
//
// Notes are assembled with [github.com/ankiconnect/ankiconnect.go/pkg/models.NoteBuilder],
// which validates field membership against the note type before anything
// is sent. Search queries are assembled with
// [github.com/ankiconnect/ankiconnect.go/pkg/query], which escapes every
// user-supplied literal for the Anki search grammar.
//
// # Errors
//
// AnkiConnect reports failures as bare strings. The client classifies them
// into the structured error values of
// [github.com/ankiconnect/ankiconnect.go/pkg/ankierr], so callers can match
// with errors.Is and errors.As instead of parsing messages.
//
// # Transport
//
// The transport is the [github.com/ankiconnect/ankiconnect.go/pkg/connection.Connection]
// interface; [FromConnection] accepts any implementation, which is how the
// tests inject a fake endpoint.
//
// [AnkiConnect]: https://foosoft.net/projects/anki-connect/
package ankiconnect
