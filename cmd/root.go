package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slideshow-builder",
	Short: "A CLI tool for arranging tagged photos into scored slideshows",
	Long: `Slideshow Builder reads catalogs of tagged photos, pairs vertical
photos into shared slides, orders the slides with a configurable
heuristic and scores the result by the interest factor between
adjacent slides.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
