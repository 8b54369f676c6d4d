package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtNote(t *testing.T) *Note {
	t.Helper()
	m := basicModel(t)
	front, _ := m.FieldRef("Front")
	back, _ := m.FieldRef("Back")
	n, err := NewNoteBuilder(m).
		WithField(front, "question").
		WithField(back, "answer").
		Build()
	require.NoError(t, err)
	return n
}

func TestNoteHasNoIDUntilAssigned(t *testing.T) {
	n := builtNote(t)

	_, ok := n.ID()
	assert.False(t, ok)

	saved := n.WithID(1234)
	id, ok := saved.ID()
	require.True(t, ok)
	assert.Equal(t, NoteID(1234), id)

	// The original stays unsaved.
	_, ok = n.ID()
	assert.False(t, ok)
}

func TestFrontAndBackValues(t *testing.T) {
	n := builtNote(t)

	front, ok := n.FrontValue()
	require.True(t, ok)
	assert.Equal(t, "question", front)

	back, ok := n.BackValue()
	require.True(t, ok)
	assert.Equal(t, "answer", back)
}

func TestWithFieldValueReturnsNewNote(t *testing.T) {
	n := builtNote(t)

	updated, err := n.WithFieldValue("Front", "reworded")
	require.NoError(t, err)

	v, _ := updated.FieldValue("Front")
	assert.Equal(t, "reworded", v)

	// Original mapping untouched.
	v, _ = n.FieldValue("Front")
	assert.Equal(t, "question", v)
}

func TestWithFieldValueRejectsUnknownField(t *testing.T) {
	n := builtNote(t)

	_, err := n.WithFieldValue("Bogus", "x")

	var unknownErr *UnknownFieldError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "Bogus", unknownErr.Field)
}

func TestFieldValuesReturnsACopy(t *testing.T) {
	n := builtNote(t)

	values := n.FieldValues()
	values["Front"] = "mutated"

	v, _ := n.FieldValue("Front")
	assert.Equal(t, "question", v)
}
