package models

// Deck is a named collection of cards. Deck names may be hierarchical using
// the "::" separator.
type Deck struct {
	id   DeckID
	name string
}

// NewDeck returns a deck with the given id and name.
func NewDeck(id DeckID, name string) Deck {
	return Deck{id: id, name: name}
}

func (d Deck) ID() DeckID {
	return d.id
}

func (d Deck) Name() string {
	return d.name
}

// DeckStats summarizes the review workload of one deck.
type DeckStats struct {
	DeckID      DeckID
	NewCount    int
	LearnCount  int
	ReviewCount int
	TotalInDeck int
}

// DeckConfig is an options group shared by one or more decks.
type DeckConfig struct {
	ID              uint64
	Name            string
	ReuseIfPossible bool
	DisableAutoQE   bool
}

// DeckTreeNode is one node in the hierarchical deck tree.
type DeckTreeNode struct {
	ID          DeckID
	Name        string
	Level       int
	Collapsed   bool
	HasChildren bool
	Children    []DeckTreeNode
}
