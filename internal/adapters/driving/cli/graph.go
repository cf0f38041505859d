package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect the indexed page graph",
	Long: `Shows an overview of the page graph built during indexing:
how many pages and connections are known, and the children of the
configured root page.`,
	RunE: runGraph,
}

var graphChildrenCmd = &cobra.Command{
	Use:   "children [page-id]",
	Short: "List the direct children of a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraphChildren,
}

func init() {
	graphCmd.AddCommand(graphChildrenCmd)
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	if graphService == nil {
		return errors.New("graph service not configured")
	}

	summary, err := graphService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	if summary.TotalPages == 0 {
		cmd.Println("Graph is empty. Run 'notion-assistant index' first.")
		return nil
	}

	cmd.Println("Page graph:")
	cmd.Printf("  Pages:       %d\n", summary.TotalPages)
	cmd.Printf("  Connections: %d\n", summary.TotalConnections)
	if summary.RootID != "" {
		cmd.Printf("  Root:        %s (%s)\n", summary.RootTitle, summary.RootID)
	}

	if len(summary.RootChildren) > 0 {
		cmd.Println()
		cmd.Println("Root children:")
		for _, child := range summary.RootChildren {
			cmd.Printf("  - %s (%s)\n", child.Title, child.ID)
		}
	}

	return nil
}

func runGraphChildren(cmd *cobra.Command, args []string) error {
	if graphService == nil {
		return errors.New("graph service not configured")
	}

	children, err := graphService.Children(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list children: %w", err)
	}

	if len(children) == 0 {
		cmd.Println("No children recorded for this page.")
		return nil
	}

	for _, child := range children {
		cmd.Printf("- %s (%s)\n", child.Title, child.ID)
	}

	return nil
}
