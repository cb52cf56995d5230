package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryanjosephkamp/openlist/internal/words"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Run the structural filter over words and print each verdict",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, word := range args {
				result := words.Check(word)
				if result.IsValid {
					fmt.Printf("%s %s\n", color.GreenString("ok"), word)
					continue
				}
				fmt.Printf("%s %s: %s\n", color.RedString("reject"), word, result.Reason)
			}
			return nil
		},
	}
}
