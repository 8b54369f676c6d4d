package ankiconnect

// Wire types for the AnkiConnect action parameters and results. Field
// names follow the add-on's JSON conventions, which mix camelCase and
// snake_case depending on the action.

type findParams struct {
	Query string `json:"query"`
}

type guiBrowseParams struct {
	Query        string           `json:"query"`
	ReorderCards *cardsReordering `json:"reorderCards,omitempty"`
}

type cardsReordering struct {
	Order    string `json:"order"`
	ColumnID string `json:"columnId"`
}

type deleteNotesParams struct {
	Notes []uint64 `json:"notes"`
}

type cardIDsParams struct {
	Cards []uint64 `json:"cards"`
}

type setFlagParams struct {
	Cards []uint64 `json:"cards"`
	Flag  int      `json:"flag"`
}

type notesInfoParams struct {
	Notes []uint64 `json:"notes"`
}

// FieldInfo is one field of a fetched note.
type FieldInfo struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// NoteInfo describes a note fetched with notesInfo.
type NoteInfo struct {
	NoteID    uint64               `json:"noteId"`
	ModelName string               `json:"modelName"`
	Tags      []string             `json:"tags"`
	Fields    map[string]FieldInfo `json:"fields"`
}

type updateNoteFields struct {
	ID     uint64            `json:"id"`
	Fields map[string]string `json:"fields"`
}

type updateNoteParams struct {
	Note updateNoteFields `json:"note"`
}

type addNoteParams struct {
	Note noteDTO `json:"note"`
}

type noteDTO struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Options   addNoteOptions    `json:"options"`
	Tags      []string          `json:"tags"`
	Audio     []mediaDTO        `json:"audio,omitempty"`
	Video     []mediaDTO        `json:"video,omitempty"`
	Picture   []mediaDTO        `json:"picture,omitempty"`
}

type addNoteOptions struct {
	AllowDuplicate        bool                   `json:"allowDuplicate"`
	DuplicateScope        string                 `json:"duplicateScope,omitempty"`
	DuplicateScopeOptions *duplicateScopeOptions `json:"duplicateScopeOptions,omitempty"`
}

// duplicateScopeOptions is accepted by the add-on but not yet populated by
// any builder path; it exists as an extension point.
type duplicateScopeOptions struct {
	DeckName       *string `json:"deckName,omitempty"`
	CheckChildren  bool    `json:"checkChildren"`
	CheckAllModels bool    `json:"checkAllModels"`
}

type mediaDTO struct {
	Path     string   `json:"path,omitempty"`
	URL      string   `json:"url,omitempty"`
	Data     string   `json:"data,omitempty"`
	Filename string   `json:"filename"`
	Fields   []string `json:"fields,omitempty"`
}

type createDeckParams struct {
	Deck string `json:"deck"`
}

type deleteDecksParams struct {
	Decks    []string `json:"decks"`
	CardsToo bool     `json:"cardsToo"`
}

type deckStatsParams struct {
	Decks []string `json:"decks"`
}

type deckStatsDTO struct {
	DeckID      uint64 `json:"deck_id"`
	Name        string `json:"name"`
	NewCount    int    `json:"new_count"`
	LearnCount  int    `json:"learn_count"`
	ReviewCount int    `json:"review_count"`
	TotalInDeck int    `json:"total_in_deck"`
}

type deckConfigsResult struct {
	CurrentDeckID   uint64          `json:"current_deck_id"`
	CurrentConfigID uint64          `json:"current_config_id"`
	AllConfigID     []uint64        `json:"all_config_id"`
	ConfigList      []deckConfigDTO `json:"config_list"`
}

type deckConfigDTO struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	ReuseIfPossible bool   `json:"reuse_if_possible"`
	DisableAutoQE   bool   `json:"disable_auto_qe"`
}

type deckTreeNodeDTO struct {
	ID          uint64            `json:"id"`
	Name        string            `json:"name"`
	Level       int               `json:"level"`
	Collapsed   bool              `json:"collapsed"`
	HasChildren bool              `json:"has_children"`
	Children    []deckTreeNodeDTO `json:"children"`
}

type storeMediaFileParams struct {
	Path           string `json:"path,omitempty"`
	URL            string `json:"url,omitempty"`
	Data           string `json:"data,omitempty"`
	Filename       string `json:"filename"`
	DeleteExisting bool   `json:"deleteExisting"`
}

type mediaFilenameParams struct {
	Filename string `json:"filename"`
}

type mediaPatternParams struct {
	Pattern string `json:"pattern"`
}

type modelNameParams struct {
	ModelName string `json:"modelName"`
}

type findModelsByIDParams struct {
	ModelIDs []uint64 `json:"modelIds"`
}

type modelStylingResult struct {
	CSS string `json:"css"`
}

type updateModelStylingParams struct {
	Model string `json:"model"`
	CSS   string `json:"css"`
}

type createModelParams struct {
	ModelName     string                  `json:"modelName"`
	InOrderFields []string                `json:"inOrderFields"`
	CSS           string                  `json:"css"`
	CardTemplates map[string]cardTemplate `json:"cardTemplates"`
}

type cardTemplate struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type modelFieldDetail struct {
	Name string `json:"name"`
	Ord  int    `json:"ord"`
}

type modelDetails struct {
	ID   uint64             `json:"id"`
	Name string             `json:"name"`
	CSS  string             `json:"css"`
	Flds []modelFieldDetail `json:"flds"`
}
