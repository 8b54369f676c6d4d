package ankiconnect

import (
	"context"

	"github.com/ankiconnect/ankiconnect.go/pkg/connection"
	"github.com/ankiconnect/ankiconnect.go/pkg/models"
	"github.com/ankiconnect/ankiconnect.go/pkg/query"
)

// CardsClient groups the card and note actions.
type CardsClient struct {
	conn connection.Connection
}

// DuplicateScope controls where duplicate notes are looked for when adding
// a note. The zero value leaves the add-on's default in place.
type DuplicateScope int

const (
	DuplicateScopeDefault DuplicateScope = iota
	// DuplicateScopeDeck checks for duplicates only within the target deck.
	DuplicateScopeDeck
	// DuplicateScopeCollection checks across the entire collection.
	DuplicateScopeCollection
)

func (s DuplicateScope) wire() string {
	switch s {
	case DuplicateScopeDeck:
		return "deck"
	case DuplicateScopeCollection:
		return "collection"
	}
	return ""
}

// AddNoteOptions adjusts duplicate handling for AddNote.
type AddNoteOptions struct {
	AllowDuplicate bool
	DuplicateScope DuplicateScope
}

// AddNote adds the note to the deck and returns the assigned note id.
func (c *CardsClient) AddNote(ctx context.Context, deck models.Deck, note *models.Note, opts AddNoteOptions) (models.NoteID, error) {
	params := addNoteParams{Note: noteToDTO(deck, note, opts)}
	id, err := connection.Send[uint64](ctx, c.conn, "addNote", params)
	if err != nil {
		return 0, err
	}
	return models.NoteID(id), nil
}

// FindCards returns the ids of cards matching the query.
func (c *CardsClient) FindCards(ctx context.Context, q query.Query) ([]models.CardID, error) {
	ids, err := connection.Send[[]uint64](ctx, c.conn, "findCards", findParams{Query: q.String()})
	if err != nil {
		return nil, err
	}
	return toCardIDs(ids), nil
}

// FindNotes returns the ids of notes matching the query.
func (c *CardsClient) FindNotes(ctx context.Context, q query.Query) ([]models.NoteID, error) {
	ids, err := connection.Send[[]uint64](ctx, c.conn, "findNotes", findParams{Query: q.String()})
	if err != nil {
		return nil, err
	}
	out := make([]models.NoteID, len(ids))
	for i, id := range ids {
		out[i] = models.NoteID(id)
	}
	return out, nil
}

// Browse opens the Anki card browser on the query and returns the ids of
// the cards shown.
func (c *CardsClient) Browse(ctx context.Context, q query.Query) ([]models.CardID, error) {
	params := guiBrowseParams{Query: q.String()}
	ids, err := connection.Send[[]uint64](ctx, c.conn, "guiBrowse", params)
	if err != nil {
		return nil, err
	}
	return toCardIDs(ids), nil
}

// BrowseSorted opens the card browser on the query with the results sorted
// by the given column.
func (c *CardsClient) BrowseSorted(ctx context.Context, q query.Query, column SortColumn, direction SortDirection) ([]models.CardID, error) {
	params := guiBrowseParams{
		Query: q.String(),
		ReorderCards: &cardsReordering{
			Order:    direction.wire(),
			ColumnID: column.wire(),
		},
	}
	ids, err := connection.Send[[]uint64](ctx, c.conn, "guiBrowse", params)
	if err != nil {
		return nil, err
	}
	return toCardIDs(ids), nil
}

// DeleteNotes deletes the notes and all cards derived from them.
func (c *CardsClient) DeleteNotes(ctx context.Context, ids []models.NoteID) error {
	raw := make([]uint64, len(ids))
	for i, id := range ids {
		raw[i] = uint64(id)
	}
	return c.conn.Send(ctx, nil, "deleteNotes", deleteNotesParams{Notes: raw})
}

// SuspendCards suspends the cards.
func (c *CardsClient) SuspendCards(ctx context.Context, ids []models.CardID) error {
	return c.conn.Send(ctx, nil, "suspend", cardIDsParams{Cards: fromCardIDs(ids)})
}

// UnsuspendCards unsuspends the cards.
func (c *CardsClient) UnsuspendCards(ctx context.Context, ids []models.CardID) error {
	return c.conn.Send(ctx, nil, "unsuspend", cardIDsParams{Cards: fromCardIDs(ids)})
}

// SetFlag marks the cards with the flag color.
func (c *CardsClient) SetFlag(ctx context.Context, ids []models.CardID, flag query.Flag) error {
	params := setFlagParams{Cards: fromCardIDs(ids), Flag: int(flag)}
	return c.conn.Send(ctx, nil, "setFlag", params)
}

// NoteInfo fetches the stored form of a note.
func (c *CardsClient) NoteInfo(ctx context.Context, id models.NoteID) (NoteInfo, error) {
	infos, err := connection.Send[[]NoteInfo](ctx, c.conn, "notesInfo", notesInfoParams{Notes: []uint64{uint64(id)}})
	if err != nil {
		return NoteInfo{}, err
	}
	if len(infos) == 0 {
		return NoteInfo{}, ErrNoteNotFound
	}
	return infos[0], nil
}

// UpdateNoteFields replaces field values of a stored note. The fields map
// is copied before sending; the caller's map is never retained.
func (c *CardsClient) UpdateNoteFields(ctx context.Context, id models.NoteID, fields map[string]string) error {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	params := updateNoteParams{Note: updateNoteFields{
		ID:     uint64(id),
		Fields: copied,
	}}
	return c.conn.Send(ctx, nil, "updateNoteFields", params)
}

func noteToDTO(deck models.Deck, note *models.Note, opts AddNoteOptions) noteDTO {
	var audio, video, picture []mediaDTO
	for _, fm := range note.Media() {
		m := fm.Media()
		dto := mediaDTO{
			Filename: m.Filename(),
			Fields:   []string{fm.FieldName()},
		}
		if path, ok := m.Source().Path(); ok {
			dto.Path = path
		}
		if url, ok := m.Source().URL(); ok {
			dto.URL = url
		}
		if data, ok := m.Source().Data(); ok {
			dto.Data = data
		}

		switch m.Type() {
		case models.MediaTypeAudio:
			audio = append(audio, dto)
		case models.MediaTypeVideo:
			video = append(video, dto)
		case models.MediaTypeImage:
			picture = append(picture, dto)
		}
	}

	return noteDTO{
		DeckName:  deck.Name(),
		ModelName: note.Model().Name(),
		Fields:    note.FieldValues(),
		Options: addNoteOptions{
			AllowDuplicate: opts.AllowDuplicate,
			DuplicateScope: opts.DuplicateScope.wire(),
		},
		Tags:    note.Tags(),
		Audio:   audio,
		Video:   video,
		Picture: picture,
	}
}

func toCardIDs(ids []uint64) []models.CardID {
	out := make([]models.CardID, len(ids))
	for i, id := range ids {
		out[i] = models.CardID(id)
	}
	return out
}

func fromCardIDs(ids []models.CardID) []uint64 {
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = uint64(id)
	}
	return out
}

// SortColumn names a card browser column that results can be sorted by.
type SortColumn int

const (
	SortByAnswer SortColumn = iota
	SortByCardModified
	SortByCards
	SortByDeck
	SortByDue
	SortByEase
	SortByLapses
	SortByInterval
	SortByNoteCreation
	SortByNoteModified
	SortByNoteType
	SortByOriginalPosition
	SortByQuestion
	SortByReps
	SortBySortField
	SortByTags
	SortByStability
	SortByDifficulty
	SortByRetrievability
)

func (c SortColumn) wire() string {
	switch c {
	case SortByAnswer:
		return "answer"
	case SortByCardModified:
		return "cardMod"
	case SortByCards:
		return "template"
	case SortByDeck:
		return "deck"
	case SortByDue:
		return "cardDue"
	case SortByEase:
		return "cardEase"
	case SortByLapses:
		return "cardLapses"
	case SortByInterval:
		return "cardIvl"
	case SortByNoteCreation:
		return "noteCrt"
	case SortByNoteModified:
		return "noteMod"
	case SortByNoteType:
		return "note"
	case SortByOriginalPosition:
		return "originalPosition"
	case SortByQuestion:
		return "question"
	case SortByReps:
		return "cardReps"
	case SortBySortField:
		return "noteFld"
	case SortByTags:
		return "noteTags"
	case SortByStability:
		return "stability"
	case SortByDifficulty:
		return "difficulty"
	case SortByRetrievability:
		return "retrievability"
	}
	return "answer"
}

// SortDirection orders browser results.
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

func (d SortDirection) wire() string {
	if d == SortDescending {
		return "descending"
	}
	return "ascending"
}
