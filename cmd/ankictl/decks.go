package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var decksJSON bool

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "Work with decks",
}

var decksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all decks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		decks, err := client.Decks().All(context.Background())
		if err != nil {
			fatal("listing decks", err)
		}

		if decksJSON {
			type deckRow struct {
				ID   uint64 `json:"id"`
				Name string `json:"name"`
			}
			rows := make([]deckRow, len(decks))
			for i, d := range decks {
				rows[i] = deckRow{ID: uint64(d.ID()), Name: d.Name()}
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(rows); err != nil {
				fatal("encoding JSON", err)
			}
			return
		}

		for _, d := range decks {
			fmt.Printf("%d\t%s\n", d.ID(), d.Name())
		}
	},
}

var decksCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a deck",
	Long:  `Create a deck. Nested decks use the "parent::child" name form.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		deck, err := client.Decks().Create(context.Background(), args[0])
		if err != nil {
			fatal("creating deck", err)
		}
		fmt.Printf("%d\t%s\n", deck.ID(), deck.Name())
	},
}

var decksStatsCmd = &cobra.Command{
	Use:   "stats [name...]",
	Short: "Show review counts for decks",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		stats, err := client.Decks().StatsAll(context.Background(), args...)
		if err != nil {
			fatal("fetching deck stats", err)
		}
		for _, name := range args {
			st, ok := stats[name]
			if !ok {
				continue
			}
			fmt.Printf("%s\tnew=%d learn=%d review=%d total=%d\n",
				name, st.NewCount, st.LearnCount, st.ReviewCount, st.TotalInDeck)
		}
	},
}

func init() {
	rootCmd.AddCommand(decksCmd)
	decksCmd.AddCommand(decksListCmd)
	decksCmd.AddCommand(decksCreateCmd)
	decksCmd.AddCommand(decksStatsCmd)
	decksListCmd.Flags().BoolVar(&decksJSON, "json", false, "Output in JSON format")
}
