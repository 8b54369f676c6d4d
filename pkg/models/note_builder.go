package models

import "html"

// NoteBuilder accumulates field content, tags, and media for exactly one
// model. Field insertion goes through [FieldRef] handles, so every stored
// value is known to target a real field; Build still re-checks membership
// so the guarantee holds even for notes assembled against a different
// model's handles.
type NoteBuilder struct {
	model  *Model
	fields map[string]string
	tags   map[string]struct{}
	media  []FieldMedia
}

// NewNoteBuilder returns an empty builder for the given model.
func NewNoteBuilder(model *Model) *NoteBuilder {
	return &NoteBuilder{
		model:  model,
		fields: make(map[string]string),
		tags:   make(map[string]struct{}),
	}
}

// WithField stores content for the field, HTML-escaping it so literal
// markup characters survive Anki's rich-text rendering. Last write wins.
func (b *NoteBuilder) WithField(ref FieldRef, content string) *NoteBuilder {
	b.fields[ref.Name()] = html.EscapeString(content)
	return b
}

// WithFieldRaw stores content verbatim, for callers who pre-formatted rich
// HTML content themselves.
func (b *NoteBuilder) WithFieldRaw(ref FieldRef, content string) *NoteBuilder {
	b.fields[ref.Name()] = content
	return b
}

// WithTag adds a tag. Adding the same tag twice has no effect.
func (b *NoteBuilder) WithTag(tag string) *NoteBuilder {
	b.tags[tag] = struct{}{}
	return b
}

// WithAudio attaches an audio file to the field.
func (b *NoteBuilder) WithAudio(ref FieldRef, source MediaSource, filename string) *NoteBuilder {
	return b.WithMedia(ref, Audio(source, filename))
}

// WithImage attaches an image to the field.
func (b *NoteBuilder) WithImage(ref FieldRef, source MediaSource, filename string) *NoteBuilder {
	return b.WithMedia(ref, Image(source, filename))
}

// WithVideo attaches a video to the field.
func (b *NoteBuilder) WithVideo(ref FieldRef, source MediaSource, filename string) *NoteBuilder {
	return b.WithMedia(ref, Video(source, filename))
}

// WithMedia attaches arbitrary media to the field.
func (b *NoteBuilder) WithMedia(ref FieldRef, media Media) *NoteBuilder {
	b.media = append(b.media, FieldMedia{media: media, field: ref.Name()})
	return b
}

// Build validates the accumulated state and returns the immutable note.
// Failures are local: the builder can be corrected and Build called again.
func (b *NoteBuilder) Build() (*Note, error) {
	fields := make(map[string]string, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	tags := make(map[string]struct{}, len(b.tags))
	for t := range b.tags {
		tags[t] = struct{}{}
	}
	media := make([]FieldMedia, len(b.media))
	copy(media, b.media)

	return newNote(b.model, fields, tags, media)
}
