package models

import "sort"

// Note is a fully built flashcard record: one model instance with field
// content, tags, and media. Notes are immutable; operations that change a
// note return a new one.
type Note struct {
	id     NoteID // zero until the note is added to Anki
	model  *Model
	fields map[string]string
	tags   map[string]struct{}
	media  []FieldMedia
}

// newNote validates field membership and constructs the note. The maps and
// slice are owned by the caller and must not be reused afterwards.
func newNote(model *Model, fields map[string]string, tags map[string]struct{}, media []FieldMedia) (*Note, error) {
	for name := range fields {
		if _, ok := model.Field(name); !ok {
			return nil, &UnknownFieldError{Field: name}
		}
	}
	for _, fm := range media {
		if _, ok := model.Field(fm.field); !ok {
			return nil, &UnknownFieldError{Field: fm.field}
		}
	}
	return &Note{model: model, fields: fields, tags: tags, media: media}, nil
}

// ID returns the note's identifier and whether it has one. Notes that have
// not been added to Anki yet have none.
func (n *Note) ID() (NoteID, bool) {
	return n.id, n.id != 0
}

// WithID returns a copy of the note carrying the identifier assigned by
// Anki.
func (n *Note) WithID(id NoteID) *Note {
	dup := *n
	dup.id = id
	return &dup
}

func (n *Note) Model() *Model {
	return n.model
}

// FieldValues returns a copy of the field-name to content mapping.
func (n *Note) FieldValues() map[string]string {
	out := make(map[string]string, len(n.fields))
	for k, v := range n.fields {
		out[k] = v
	}
	return out
}

// FieldValue returns the content stored for the named field.
func (n *Note) FieldValue(name string) (string, bool) {
	v, ok := n.fields[name]
	return v, ok
}

// Tags returns the note's tags, sorted.
func (n *Note) Tags() []string {
	out := make([]string, 0, len(n.tags))
	for t := range n.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (n *Note) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// Media returns the note's media attachments.
func (n *Note) Media() []FieldMedia {
	out := make([]FieldMedia, len(n.media))
	copy(out, n.media)
	return out
}

// FrontValue returns the content of the question-side field, if the model
// has a recognizable one.
func (n *Note) FrontValue() (string, bool) {
	f, ok := n.model.FrontField()
	if !ok {
		return "", false
	}
	v, ok := n.fields[f.Name()]
	return v, ok
}

// BackValue returns the content of the answer-side field, if the model has
// a recognizable one.
func (n *Note) BackValue() (string, bool) {
	f, ok := n.model.BackField()
	if !ok {
		return "", false
	}
	v, ok := n.fields[f.Name()]
	return v, ok
}

// WithFieldValue returns a new note with the named field set to value. The
// receiver is left untouched.
func (n *Note) WithFieldValue(name, value string) (*Note, error) {
	if _, ok := n.model.Field(name); !ok {
		return nil, &UnknownFieldError{Field: name}
	}
	dup := *n
	dup.fields = n.FieldValues()
	dup.fields[name] = value
	return &dup, nil
}
