package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Work with note types",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all note types with their fields",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)
		all, err := client.Models().All(context.Background())
		if err != nil {
			fatal("listing note types", err)
		}
		for _, m := range all {
			names := make([]string, len(m.Fields()))
			for i, f := range m.Fields() {
				names[i] = f.Name()
			}
			fmt.Printf("%d\t%s\t%s\n", m.ID(), m.Name(), strings.Join(names, ","))
		}
	},
}

var modelsStylingCmd = &cobra.Command{
	Use:   "styling [name]",
	Short: "Print the CSS of a note type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		client := newClient(cmd)
		model, err := client.Models().ByName(ctx, args[0])
		if err != nil {
			fatal("resolving model", err)
		}
		css, err := client.Models().Styling(ctx, model)
		if err != nil {
			fatal("fetching styling", err)
		}
		fmt.Println(css)
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsStylingCmd)
}
