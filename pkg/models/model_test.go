package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(1, "Basic", []Field{
		NewField("Front", 0),
		NewField("Back", 1),
	})
	require.NoError(t, err)
	return m
}

func TestNewModelRejectsEmptyFieldList(t *testing.T) {
	_, err := NewModel(1, "Empty", nil)
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestNewModelRejectsDuplicateFieldNames(t *testing.T) {
	_, err := NewModel(1, "Dupes", []Field{
		NewField("Front", 0),
		NewField("Front", 1),
	})

	var dupErr *DuplicateFieldError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "Front", dupErr.Field)
}

func TestModelAccessors(t *testing.T) {
	m := basicModel(t)

	assert.Equal(t, ModelID(1), m.ID())
	assert.Equal(t, "Basic", m.Name())

	fields := m.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Front", fields[0].Name())
	assert.Equal(t, 0, fields[0].Ord())
	assert.Equal(t, "Back", fields[1].Name())
	assert.Equal(t, 1, fields[1].Ord())
}

func TestFieldLookup(t *testing.T) {
	m := basicModel(t)

	f, ok := m.Field("Back")
	require.True(t, ok)
	assert.Equal(t, "Back", f.Name())

	_, ok = m.Field("Missing")
	assert.False(t, ok)
}

func TestFieldRefOnlyForExistingFields(t *testing.T) {
	m := basicModel(t)

	ref, ok := m.FieldRef("Front")
	require.True(t, ok)
	assert.Equal(t, "Front", ref.Name())
	assert.Same(t, m, ref.Model())

	_, ok = m.FieldRef("Missing")
	assert.False(t, ok)
}

func TestFrontBackHeuristics(t *testing.T) {
	m, err := NewModel(2, "Quiz", []Field{
		NewField("The Question", 0),
		NewField("ANSWER text", 1),
		NewField("Extra", 2),
	})
	require.NoError(t, err)

	front, ok := m.FrontField()
	require.True(t, ok)
	assert.Equal(t, "The Question", front.Name())

	back, ok := m.BackField()
	require.True(t, ok)
	assert.Equal(t, "ANSWER text", back.Name())
}

func TestFrontBackHeuristicsMayFindNothing(t *testing.T) {
	m, err := NewModel(3, "Opaque", []Field{
		NewField("A", 0),
		NewField("B", 1),
	})
	require.NoError(t, err)

	_, ok := m.FrontField()
	assert.False(t, ok)
	_, ok = m.BackField()
	assert.False(t, ok)
}

func TestFieldsReturnsACopy(t *testing.T) {
	m := basicModel(t)

	fields := m.Fields()
	fields[0] = NewField("Mutated", 9)

	again := m.Fields()
	assert.Equal(t, "Front", again[0].Name())
}
