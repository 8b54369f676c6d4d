package models

// Identifier types for the collection objects managed by Anki.
type (
	// ModelID identifies a note type.
	ModelID uint64
	// DeckID identifies a deck.
	DeckID uint64
	// NoteID identifies a note.
	NoteID uint64
	// CardID identifies a card derived from a note.
	CardID uint64
)
