// Package models holds the immutable domain types of the Anki collection:
// note types and their fields, decks, notes, and media attachments.
//
// A [Model] is fetched from Anki once and never changes afterwards. Field
// membership is proven through [FieldRef] handles that can only be obtained
// from the model itself, so a note builder can never silently target a
// field the model does not have.
package models

import "strings"

// Field is a named slot within a model, at a fixed position.
type Field struct {
	name string
	ord  int
}

// NewField returns a field with the given name and ordinal.
func NewField(name string, ord int) Field {
	return Field{name: name, ord: ord}
}

func (f Field) Name() string {
	return f.name
}

// Ord is the position of the field within its model.
func (f Field) Ord() int {
	return f.ord
}

// IsFront reports whether the field looks like a question-side field,
// judged by its name. Best effort only.
func (f Field) IsFront() bool {
	name := strings.ToLower(f.name)
	return strings.Contains(name, "front") || strings.Contains(name, "question")
}

// IsBack reports whether the field looks like an answer-side field, judged
// by its name. Best effort only.
func (f Field) IsBack() bool {
	name := strings.ToLower(f.name)
	return strings.Contains(name, "back") || strings.Contains(name, "answer")
}

// Model is a note type: a named, ordered list of fields shared by all notes
// of that type. Immutable once constructed.
type Model struct {
	id     ModelID
	name   string
	fields []Field
}

// NewModel validates and constructs a model. The field list must be
// non-empty and field names must be unique.
func NewModel(id ModelID, name string, fields []Field) (*Model, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.name]; dup {
			return nil, &DuplicateFieldError{Field: f.name}
		}
		seen[f.name] = struct{}{}
	}

	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Model{id: id, name: name, fields: fs}, nil
}

func (m *Model) ID() ModelID {
	return m.id
}

func (m *Model) Name() string {
	return m.name
}

// Fields returns the model's fields in order.
func (m *Model) Fields() []Field {
	fs := make([]Field, len(m.fields))
	copy(fs, m.fields)
	return fs
}

// Field looks up a field by name.
func (m *Model) Field(name string) (Field, bool) {
	for _, f := range m.fields {
		if f.name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldRef returns a validated handle for the named field, proving it
// belongs to this model.
func (m *Model) FieldRef(name string) (FieldRef, bool) {
	f, ok := m.Field(name)
	if !ok {
		return FieldRef{}, false
	}
	return FieldRef{model: m, field: f}, true
}

// FrontField returns the first field that looks like a question side.
func (m *Model) FrontField() (Field, bool) {
	for _, f := range m.fields {
		if f.IsFront() {
			return f, true
		}
	}
	return Field{}, false
}

// BackField returns the first field that looks like an answer side.
func (m *Model) BackField() (Field, bool) {
	for _, f := range m.fields {
		if f.IsBack() {
			return f, true
		}
	}
	return Field{}, false
}

// FieldRef pairs a model with one of its fields. It is only obtainable from
// [Model.FieldRef], so holding one proves the field exists in the model.
type FieldRef struct {
	model *Model
	field Field
}

func (r FieldRef) Name() string {
	return r.field.name
}

func (r FieldRef) Field() Field {
	return r.field
}

func (r FieldRef) Model() *Model {
	return r.model
}
