package ankiconnect_test

import (
	"context"
	"fmt"

	ankiconnect "github.com/ankiconnect/ankiconnect.go"
	"github.com/ankiconnect/ankiconnect.go/internal/fakeanki"
	"github.com/ankiconnect/ankiconnect.go/pkg/connection"
	"github.com/ankiconnect/ankiconnect.go/pkg/models"
)

func ExampleCardsClient_AddNote() {
	// The example talks to a fake endpoint; point the client at
	// localhost:8765 to use a running Anki instead.
	server := fakeanki.New()
	defer server.Close()
	server.StubAction("addNote", fakeanki.Stub{Result: 1496198395707})

	client := ankiconnect.FromConnection(
		connection.NewHTTPConnection(&connection.Config{BaseURL: server.URL()}),
	)

	model, err := models.NewModel(1607392319, "Basic", []models.Field{
		models.NewField("Front", 0),
		models.NewField("Back", 1),
	})
	if err != nil {
		panic(err)
	}
	front, _ := model.FieldRef("Front")
	back, _ := model.FieldRef("Back")

	note, err := models.NewNoteBuilder(model).
		WithField(front, "dog").
		WithField(back, "犬").
		WithTag("animals").
		Build()
	if err != nil {
		panic(err)
	}

	deck := models.NewDeck(1, "Default")
	id, err := client.Cards().AddNote(context.Background(), deck, note, ankiconnect.AddNoteOptions{})
	if err != nil {
		panic(err)
	}

	fmt.Printf("added note %d\n", id)
	// Output: added note 1496198395707
}
