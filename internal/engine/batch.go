package engine

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// BatchResult collects the outcomes of one batch run. Files are
// independent, so some may succeed while others fail.
type BatchResult struct {
	Results []FileResult
	Errors  []error
}

// fileOutcome carries one worker's result back to the collector.
type fileOutcome struct {
	index  int
	result *FileResult
	err    error
}

// Run processes the given input files, at most concurrency at a time.
// Each file runs the full pipeline against its own fresh catalog.
// Results keep the order of paths; a failed file contributes an error
// and no result. Remaining files are skipped once ctx is cancelled.
func (e *Engine) Run(ctx context.Context, paths []string, concurrency int) *BatchResult {
	if concurrency <= 0 {
		concurrency = 4
	}

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription(fmt.Sprintf("Building slideshows (%d workers)", concurrency)),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	outcomes := make(chan fileOutcome, len(paths))
	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result, err := e.ProcessFile(path)
			outcomes <- fileOutcome{index: index, result: result, err: err}
			_ = bar.Add(1)
		}(i, path)
	}

	wg.Wait()
	close(outcomes)

	ordered := make([]*fileOutcome, len(paths))
	for outcome := range outcomes {
		o := outcome
		ordered[o.index] = &o
	}

	batch := &BatchResult{}
	for _, o := range ordered {
		if o == nil {
			continue // cancelled before start
		}
		if o.err != nil {
			batch.Errors = append(batch.Errors, o.err)
			continue
		}
		log.Printf("%s: %d slides, score %d", o.result.Input, o.result.SlideCount, o.result.Score)
		batch.Results = append(batch.Results, *o.result)
	}
	return batch
}
