// Package ankierr defines the structured error values reported by the
// AnkiConnect add-on, and the classifier that maps its raw error strings
// onto them.
//
// AnkiConnect reports every failure as a single free-form string. The
// strings are not versioned, so [Classify] matches against the known
// message table and falls back to [OtherError] for anything it does not
// recognize.
package ankierr

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by AnkiConnect that carry no payload.
var (
	ErrDuplicateNote     = errors.New("note is a duplicate of an existing note")
	ErrEmptyNote         = errors.New("note is empty")
	ErrMissingMediaField = errors.New("media requires a data, path, or url field")
	ErrModelNameExists   = errors.New("model name already exists")
	ErrEmptyQuestion     = errors.New("field values would make an empty question on all cards")
	ErrUnsupportedAction = errors.New("unsupported action")
)

// DeckNotFoundError is returned when an action names a deck that does not
// exist in the collection.
type DeckNotFoundError struct {
	Deck string
}

func (e *DeckNotFoundError) Error() string {
	return fmt.Sprintf("deck not found: %s", e.Deck)
}

// ModelNotFoundError is returned when an action names a note type that does
// not exist in the collection.
type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model not found: %s", e.Model)
}

// InvalidColumnIDError is returned when a browse action sorts by an unknown
// column.
type InvalidColumnIDError struct {
	ColumnID string
}

func (e *InvalidColumnIDError) Error() string {
	return fmt.Sprintf("invalid column id: %s", e.ColumnID)
}

// InvalidCardOrderError is returned when a browse action sorts in an unknown
// direction.
type InvalidCardOrderError struct {
	Order string
}

func (e *InvalidCardOrderError) Error() string {
	return fmt.Sprintf("invalid card order: %s", e.Order)
}

// OtherError wraps an error string that did not match any known message.
// An unrecognized message is still a legitimate failure, not a bug in the
// classifier.
type OtherError struct {
	Message string
}

func (e *OtherError) Error() string {
	return e.Message
}

// Known message prefixes. The remainder of the message carries the
// offending name.
const (
	deckNotFoundPrefix     = "deck was not found: "
	modelNotFoundPrefix    = "model was not found: "
	invalidColumnIDPrefix  = "invalid columnId: "
	invalidCardOrderPrefix = "invalid card order: "
)

// Known exact messages.
const (
	duplicateNoteMsg     = "cannot create note because it is a duplicate"
	emptyNoteMsg         = "cannot create note because it is empty"
	missingMediaFieldMsg = `You must provide a "data", "path", or "url" field.`
	modelNameExistsMsg   = "Model name already exists"
	emptyQuestionMsg     = "The field values you have provided would make an empty question on all cards."
	unsupportedActionMsg = "unsupported action"
)

// Classify maps a raw AnkiConnect error string to a structured error value.
// It is total: every input yields exactly one error, with unmatched
// messages classified as *OtherError.
func Classify(raw string) error {
	switch {
	case strings.HasPrefix(raw, deckNotFoundPrefix):
		return &DeckNotFoundError{Deck: strings.TrimSpace(strings.TrimPrefix(raw, deckNotFoundPrefix))}
	case strings.HasPrefix(raw, modelNotFoundPrefix):
		return &ModelNotFoundError{Model: strings.TrimSpace(strings.TrimPrefix(raw, modelNotFoundPrefix))}
	case strings.HasPrefix(raw, invalidColumnIDPrefix):
		return &InvalidColumnIDError{ColumnID: strings.TrimSpace(strings.TrimPrefix(raw, invalidColumnIDPrefix))}
	case strings.HasPrefix(raw, invalidCardOrderPrefix):
		return &InvalidCardOrderError{Order: strings.TrimSpace(strings.TrimPrefix(raw, invalidCardOrderPrefix))}
	}

	switch raw {
	case duplicateNoteMsg:
		return ErrDuplicateNote
	case emptyNoteMsg:
		return ErrEmptyNote
	case missingMediaFieldMsg:
		return ErrMissingMediaField
	case modelNameExistsMsg:
		return ErrModelNameExists
	case emptyQuestionMsg:
		return ErrEmptyQuestion
	case unsupportedActionMsg:
		return ErrUnsupportedAction
	}

	return &OtherError{Message: raw}
}
