package ankiconnect

import (
	"context"
	"errors"
	"sort"

	"github.com/ankiconnect/ankiconnect.go/pkg/connection"
	"github.com/ankiconnect/ankiconnect.go/pkg/models"
	"github.com/ankiconnect/ankiconnect.go/pkg/query"
)

// ErrDeckNotFound is returned by lookups that match no deck.
var ErrDeckNotFound = errors.New("deck not found")

// ErrEmptyDeckName is returned when a deck operation is given an empty name.
var ErrEmptyDeckName = errors.New("deck name must not be empty")

// DecksClient groups the deck actions.
type DecksClient struct {
	conn connection.Connection
}

// All returns every deck in the collection, sorted by name.
func (c *DecksClient) All(ctx context.Context) ([]models.Deck, error) {
	byName, err := connection.Send[map[string]uint64](ctx, c.conn, "deckNamesAndIds", nil)
	if err != nil {
		return nil, err
	}
	decks := make([]models.Deck, 0, len(byName))
	for name, id := range byName {
		decks = append(decks, models.NewDeck(models.DeckID(id), name))
	}
	sort.Slice(decks, func(i, j int) bool {
		return decks[i].Name() < decks[j].Name()
	})
	return decks, nil
}

// ByName returns the deck with the given name, or ErrDeckNotFound.
func (c *DecksClient) ByName(ctx context.Context, name string) (models.Deck, error) {
	if name == "" {
		return models.Deck{}, ErrEmptyDeckName
	}
	decks, err := c.All(ctx)
	if err != nil {
		return models.Deck{}, err
	}
	for _, d := range decks {
		if d.Name() == name {
			return d, nil
		}
	}
	return models.Deck{}, ErrDeckNotFound
}

// ByID returns the deck with the given id, or ErrDeckNotFound.
func (c *DecksClient) ByID(ctx context.Context, id models.DeckID) (models.Deck, error) {
	decks, err := c.All(ctx)
	if err != nil {
		return models.Deck{}, err
	}
	for _, d := range decks {
		if d.ID() == id {
			return d, nil
		}
	}
	return models.Deck{}, ErrDeckNotFound
}

// Exists reports whether a deck with the given name exists.
func (c *DecksClient) Exists(ctx context.Context, name string) (bool, error) {
	_, err := c.ByName(ctx, name)
	if errors.Is(err, ErrDeckNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create makes a new deck and returns it. Nested decks are created with
// the "parent::child" name form.
func (c *DecksClient) Create(ctx context.Context, name string) (models.Deck, error) {
	if name == "" {
		return models.Deck{}, ErrEmptyDeckName
	}
	id, err := connection.Send[uint64](ctx, c.conn, "createDeck", createDeckParams{Deck: name})
	if err != nil {
		return models.Deck{}, err
	}
	return models.NewDeck(models.DeckID(id), name), nil
}

// Delete removes the named decks. When cardsToo is true the cards they
// contain are deleted as well; the add-on currently requires it.
func (c *DecksClient) Delete(ctx context.Context, cardsToo bool, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	params := deleteDecksParams{Decks: names, CardsToo: cardsToo}
	return c.conn.Send(ctx, nil, "deleteDecks", params)
}

// Stats returns the review workload of one deck.
func (c *DecksClient) Stats(ctx context.Context, deck models.Deck) (models.DeckStats, error) {
	all, err := c.StatsAll(ctx, deck.Name())
	if err != nil {
		return models.DeckStats{}, err
	}
	stats, ok := all[deck.Name()]
	if !ok {
		return models.DeckStats{}, ErrDeckNotFound
	}
	return stats, nil
}

// StatsAll returns the review workload of the named decks, keyed by deck
// name.
func (c *DecksClient) StatsAll(ctx context.Context, names ...string) (map[string]models.DeckStats, error) {
	raw, err := connection.Send[map[string]deckStatsDTO](ctx, c.conn, "getDeckStats", deckStatsParams{Decks: names})
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.DeckStats, len(raw))
	for _, dto := range raw {
		out[dto.Name] = models.DeckStats{
			DeckID:      models.DeckID(dto.DeckID),
			NewCount:    dto.NewCount,
			LearnCount:  dto.LearnCount,
			ReviewCount: dto.ReviewCount,
			TotalInDeck: dto.TotalInDeck,
		}
	}
	return out, nil
}

// Tree returns the deck hierarchy as shown in the Anki deck list.
func (c *DecksClient) Tree(ctx context.Context) ([]models.DeckTreeNode, error) {
	nodes, err := connection.Send[[]deckTreeNodeDTO](ctx, c.conn, "deckTree", nil)
	if err != nil {
		return nil, err
	}
	return deckTreeFromDTO(nodes), nil
}

func deckTreeFromDTO(nodes []deckTreeNodeDTO) []models.DeckTreeNode {
	if nodes == nil {
		return nil
	}
	out := make([]models.DeckTreeNode, len(nodes))
	for i, n := range nodes {
		out[i] = models.DeckTreeNode{
			ID:          models.DeckID(n.ID),
			Name:        n.Name,
			Level:       n.Level,
			Collapsed:   n.Collapsed,
			HasChildren: n.HasChildren,
			Children:    deckTreeFromDTO(n.Children),
		}
	}
	return out
}

// Configurations returns every deck options group in the collection.
func (c *DecksClient) Configurations(ctx context.Context) ([]models.DeckConfig, error) {
	res, err := connection.Send[deckConfigsResult](ctx, c.conn, "getDeckConfig", nil)
	if err != nil {
		return nil, err
	}
	configs := make([]models.DeckConfig, len(res.ConfigList))
	for i, dto := range res.ConfigList {
		configs[i] = models.DeckConfig{
			ID:              dto.ID,
			Name:            dto.Name,
			ReuseIfPossible: dto.ReuseIfPossible,
			DisableAutoQE:   dto.DisableAutoQE,
		}
	}
	return configs, nil
}

// CardsInDeck returns the ids of all cards in the deck.
func (c *DecksClient) CardsInDeck(ctx context.Context, deck models.Deck) ([]models.CardID, error) {
	q := query.New().InDeck(deck.Name()).Build()
	ids, err := connection.Send[[]uint64](ctx, c.conn, "findCards", findParams{Query: q.String()})
	if err != nil {
		return nil, err
	}
	return toCardIDs(ids), nil
}
