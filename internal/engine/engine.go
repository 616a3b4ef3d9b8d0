package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/slideshow-builder/internal/catalog"
	"github.com/kozaktomas/slideshow-builder/internal/slideshow"
)

// OutputExt is the extension of every written slideshow artifact.
const OutputExt = ".sol"

// Engine runs the slideshow pipeline: parse, rank, build, sequence,
// score, write. One engine serves a whole batch; the per-file catalog
// state lives in ProcessFile so files never share tag entries.
type Engine struct {
	ranking    slideshow.Ranking
	sequencing slideshow.Sequencing
	outputDir  string
}

// Options selects the engine's policies and output location.
type Options struct {
	Ranking    string
	Sequencing string
	OutputDir  string
}

// FileResult describes one successfully processed input file.
type FileResult struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	SlideCount int    `json:"slide_count"`
	Score      int    `json:"score"`
	DroppedID  int    `json:"dropped_id"` // -1 when no vertical photo was dropped
}

// New resolves the configured policies and returns a ready engine.
func New(opts Options) (*Engine, error) {
	ranking, err := slideshow.RankingByName(opts.Ranking)
	if err != nil {
		return nil, err
	}
	sequencing, err := slideshow.SequencingByName(opts.Sequencing)
	if err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	return &Engine{
		ranking:    ranking,
		sequencing: sequencing,
		outputDir:  outputDir,
	}, nil
}

// BuildShow runs rank, build, sequence and score over a parsed catalog.
// Each stage needs the complete output of the previous one, so the
// stages are strictly sequential. Returns the finished slideshow and
// the id of the dropped vertical photo (-1 if none).
func (e *Engine) BuildShow(cat *catalog.Catalog) (*slideshow.Slideshow, int) {
	ranked := e.ranking(cat)
	built := slideshow.Build(ranked)
	slides := e.sequencing(built.Horizontal, built.Vertical)

	return &slideshow.Slideshow{
		Slides: slides,
		Score:  slideshow.TotalScore(slides),
	}, built.DroppedID
}

// ProcessFile transforms one input catalog into one output artifact
// named after the input's stem. A parse or IO failure aborts this file
// only; the caller decides how to report it.
func (e *Engine) ProcessFile(path string) (*FileResult, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()

	cat, err := catalog.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	show, droppedID := e.BuildShow(cat)

	outPath := filepath.Join(e.outputDir, outputStem(path)+OutputExt)
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if err := slideshow.Write(out, show); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	return &FileResult{
		Input:      path,
		Output:     outPath,
		SlideCount: len(show.Slides),
		Score:      show.Score,
		DroppedID:  droppedID,
	}, nil
}

// outputStem returns the input's base filename without its extension.
func outputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
