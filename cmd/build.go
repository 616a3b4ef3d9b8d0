package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kozaktomas/slideshow-builder/internal/config"
	"github.com/kozaktomas/slideshow-builder/internal/engine"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [catalog-file...]",
	Short: "Build slideshows from photo catalogs",
	Long: `Build one slideshow per input catalog file.
Each catalog is ranked, paired into slides, sequenced and scored
independently; the result is written next to the configured output
directory as <input-stem>.sol. Files in a batch are processed
concurrently since they share no state.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().String("ranking", "", "Photo ranking policy (default from SLIDESHOW_RANKING)")
	buildCmd.Flags().String("sequencing", "", "Slide sequencing policy (default from SLIDESHOW_SEQUENCING)")
	buildCmd.Flags().String("output", "", "Output directory (default from SLIDESHOW_OUTPUT_DIR)")
	buildCmd.Flags().Int("concurrency", 0, "Number of files processed in parallel (default from SLIDESHOW_CONCURRENCY)")
	buildCmd.Flags().Bool("quiet", false, "Suppress per-file log lines")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	ranking := mustGetString(cmd, "ranking")
	if ranking == "" {
		ranking = cfg.Engine.Ranking
	}
	sequencing := mustGetString(cmd, "sequencing")
	if sequencing == "" {
		sequencing = cfg.Engine.Sequencing
	}
	outputDir := mustGetString(cmd, "output")
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	concurrency := mustGetInt(cmd, "concurrency")
	if concurrency <= 0 {
		concurrency = cfg.Engine.Concurrency
	}
	if mustGetBool(cmd, "quiet") {
		log.SetOutput(io.Discard)
	}

	eng, err := engine.New(engine.Options{
		Ranking:    ranking,
		Sequencing: sequencing,
		OutputDir:  outputDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Ranking: %s\n", ranking)
	fmt.Printf("Sequencing: %s\n", sequencing)
	fmt.Println()

	// Set up context with signal handling for graceful cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal...")
		cancel()
	}()

	batch := eng.Run(ctx, args, concurrency)

	fmt.Printf("\nProcessed: %d files\n", len(batch.Results))
	totalScore := 0
	for _, result := range batch.Results {
		totalScore += result.Score
		if result.DroppedID >= 0 {
			fmt.Printf("  %s: dropped unpaired vertical photo %d\n", result.Input, result.DroppedID)
		}
	}
	fmt.Printf("Total score: %d\n", totalScore)

	if len(batch.Errors) > 0 {
		fmt.Printf("\nErrors: %d\n", len(batch.Errors))
		for _, err := range batch.Errors {
			fmt.Printf("  - %v\n", err)
		}
		if len(batch.Results) == 0 {
			return fmt.Errorf("all %d files failed", len(batch.Errors))
		}
	}

	return nil
}
