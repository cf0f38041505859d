package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page [page-id]",
	Short: "Show a page's rendered content",
	Long: `Fetches a single page live from the workspace and prints its
title, properties, and rendered text.`,
	Args: cobra.ExactArgs(1),
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	if pageService == nil {
		return errors.New("page service not configured; set the notion token first")
	}

	page, err := pageService.Read(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to read page: %w", err)
	}

	cmd.Printf("%s (%s)\n", page.Title, page.ID)

	if len(page.Properties) > 0 {
		cmd.Println()
		cmd.Println("Properties:")
		names := make([]string, 0, len(page.Properties))
		for name := range page.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			value := page.Properties[name].String()
			if value == "" {
				continue
			}
			cmd.Printf("  %s: %s\n", name, value)
		}
	}

	if page.FullText != "" {
		cmd.Println()
		cmd.Println(page.FullText)
	}

	return nil
}
