package cmd

import (
	"fmt"
	"os"

	"github.com/kozaktomas/slideshow-builder/internal/catalog"
	"github.com/kozaktomas/slideshow-builder/internal/slideshow"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [catalog-file] [solution-file]",
	Short: "Re-score an existing slideshow against its catalog",
	Long: `Parse a catalog and a previously written solution, validate that
every slide is one horizontal photo or a pair of vertical photos from
the catalog, and print the total adjacency score.`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	catalogPath, solutionPath := args[0], args[1]

	catFile, err := os.Open(catalogPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", catalogPath, err)
	}
	defer catFile.Close()

	cat, err := catalog.Parse(catFile)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", catalogPath, err)
	}

	solFile, err := os.Open(solutionPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", solutionPath, err)
	}
	defer solFile.Close()

	slides, err := slideshow.ReadSolution(solFile, cat)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", solutionPath, err)
	}

	fmt.Printf("%s: %d slides, score %d\n", solutionPath, len(slides), slideshow.TotalScore(slides))
	return nil
}
