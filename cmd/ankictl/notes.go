package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ankiconnect "github.com/ankiconnect/ankiconnect.go"
	"github.com/ankiconnect/ankiconnect.go/pkg/models"
	"github.com/ankiconnect/ankiconnect.go/pkg/query"
)

var (
	addDeck      string
	addModel     string
	addFields    []string
	addTags      []string
	addDuplicate bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Work with notes",
}

var notesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Long: `Add a note to a deck. Fields are given as name=value pairs:

  ankictl notes add --deck Default --model Basic \
      --field Front=dog --field Back=犬 --tag animals`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		client := newClient(cmd)

		deck, err := client.Decks().ByName(ctx, addDeck)
		if err != nil {
			fatal("resolving deck", err)
		}
		model, err := client.Models().ByName(ctx, addModel)
		if err != nil {
			fatal("resolving model", err)
		}

		builder := models.NewNoteBuilder(model)
		for _, pair := range addFields {
			name, value, ok := strings.Cut(pair, "=")
			if !ok {
				fatal("parsing field", fmt.Errorf("want name=value, got %q", pair))
			}
			ref, ok := model.FieldRef(name)
			if !ok {
				fatal("resolving field", fmt.Errorf("model %s has no field %q", model.Name(), name))
			}
			builder.WithField(ref, value)
		}
		for _, tag := range addTags {
			builder.WithTag(tag)
		}
		note, err := builder.Build()
		if err != nil {
			fatal("building note", err)
		}

		id, err := client.Cards().AddNote(ctx, deck, note, ankiconnect.AddNoteOptions{
			AllowDuplicate: addDuplicate,
		})
		if err != nil {
			fatal("adding note", err)
		}
		fmt.Println(id)
	},
}

var notesFindCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Find notes with an Anki search query",
	Long: `Find notes with a raw Anki search query, for example:

  ankictl notes find 'deck:Default -tag:reviewed'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		q := query.Raw(args[0])
		ids, err := client.Cards().FindNotes(context.Background(), q)
		if err != nil {
			fatal("finding notes", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesFindCmd)

	notesAddCmd.Flags().StringVar(&addDeck, "deck", "", "Target deck name")
	notesAddCmd.Flags().StringVar(&addModel, "model", "", "Note type name")
	notesAddCmd.Flags().StringArrayVar(&addFields, "field", nil, "Field as name=value (repeatable)")
	notesAddCmd.Flags().StringArrayVar(&addTags, "tag", nil, "Tag to attach (repeatable)")
	notesAddCmd.Flags().BoolVar(&addDuplicate, "allow-duplicate", false, "Allow duplicate notes")
	_ = notesAddCmd.MarkFlagRequired("deck")
	_ = notesAddCmd.MarkFlagRequired("model")
}
