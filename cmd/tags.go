package cmd

import (
	"fmt"
	"os"

	"github.com/kozaktomas/slideshow-builder/internal/catalog"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [catalog-file]",
	Short: "Show tag popularity for a catalog",
	Long: `Parse a catalog and print every tag with the number of photos
carrying it, most popular first.`,
	Args: cobra.ExactArgs(1),
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().Int("top", 0, "Only show the N most popular tags (0 = all)")
}

func runTags(cmd *cobra.Command, args []string) error {
	top := mustGetInt(cmd, "top")

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer file.Close()

	cat, err := catalog.Parse(file)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	report := catalog.PopularityReport(cat)
	if top > 0 && top < len(report) {
		report = report[:top]
	}

	fmt.Printf("%d photos, %d distinct tags\n\n", len(cat.Photos), len(cat.Index.Tags()))
	for _, entry := range report {
		fmt.Printf("%6d  %s\n", entry.Count, entry.Tag)
	}
	return nil
}
