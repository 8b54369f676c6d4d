package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	mediaFromPath  string
	mediaFromURL   string
	mediaOverwrite bool
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Work with the media folder",
}

var mediaStoreCmd = &cobra.Command{
	Use:   "store [filename]",
	Short: "Store a media file",
	Long: `Store a file in the collection's media folder under the given name,
from a local path or a URL:

  ankictl media store dog.mp3 --from-path ./dog.mp3
  ankictl media store dog.jpg --from-url https://example.com/dog.jpg`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		client := newClient(cmd)

		var stored string
		var err error
		switch {
		case mediaFromPath != "":
			stored, err = client.Media().StoreFromPath(ctx, mediaFromPath, args[0], mediaOverwrite)
		case mediaFromURL != "":
			stored, err = client.Media().StoreFromURL(ctx, mediaFromURL, args[0], mediaOverwrite)
		default:
			fatal("storing media", fmt.Errorf("one of --from-path or --from-url is required"))
		}
		if err != nil {
			fatal("storing media", err)
		}
		fmt.Println(stored)
	},
}

var mediaListCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List stored media files matching a glob pattern",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		names, err := client.Media().ListFiles(context.Background(), args[0])
		if err != nil {
			fatal("listing media", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(mediaCmd)
	mediaCmd.AddCommand(mediaStoreCmd)
	mediaCmd.AddCommand(mediaListCmd)

	mediaStoreCmd.Flags().StringVar(&mediaFromPath, "from-path", "", "Local file to store")
	mediaStoreCmd.Flags().StringVar(&mediaFromURL, "from-url", "", "URL to download on the Anki side")
	mediaStoreCmd.Flags().BoolVar(&mediaOverwrite, "overwrite", false, "Replace an existing file with the same name")
}
