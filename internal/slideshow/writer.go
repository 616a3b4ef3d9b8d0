package slideshow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kozaktomas/slideshow-builder/internal/catalog"
)

// ErrMalformedSolution marks a solution file that cannot be parsed or
// does not match its catalog.
var ErrMalformedSolution = errors.New("malformed solution")

// Write serializes a slideshow: the slide count on the first line, then
// one line of space-separated photo ids per slide in sequence order.
func Write(w io.Writer, show *Slideshow) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(show.Slides)); err != nil {
		return fmt.Errorf("writing slideshow: %w", err)
	}
	for _, slide := range show.Slides {
		ids := slide.PhotoIDs()
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("writing slideshow: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing slideshow: %w", err)
	}
	return nil
}

// ReadSolution parses a previously written slideshow and rebuilds its
// slides from the catalog, validating that every id exists and that
// each slide is either one horizontal photo or two vertical photos.
func ReadSolution(r io.Reader, cat *catalog.Catalog) ([]Slide, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading solution: %w", err)
		}
		return nil, fmt.Errorf("line 1: missing slide count: %w", ErrMalformedSolution)
	}
	declared, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("line 1: slide count is not a number: %w", ErrMalformedSolution)
	}

	var slides []Slide
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		slide, err := parseSolutionLine(line, cat)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		slides = append(slides, slide)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading solution: %w", err)
	}

	if len(slides) != declared {
		return nil, fmt.Errorf("declared %d slides but found %d: %w", declared, len(slides), ErrMalformedSolution)
	}
	return slides, nil
}

func parseSolutionLine(line string, cat *catalog.Catalog) (Slide, error) {
	fields := strings.Fields(line)
	photos := make([]catalog.Photo, len(fields))
	for i, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return Slide{}, fmt.Errorf("photo id %q is not a number: %w", field, ErrMalformedSolution)
		}
		if id < 0 || id >= len(cat.Photos) {
			return Slide{}, fmt.Errorf("photo id %d is not in the catalog: %w", id, ErrMalformedSolution)
		}
		photos[i] = cat.Photos[id]
	}

	switch len(photos) {
	case 1:
		if photos[0].Orientation != catalog.Horizontal {
			return Slide{}, fmt.Errorf("single-photo slide with vertical photo %d: %w", photos[0].ID, ErrMalformedSolution)
		}
	case 2:
		for _, p := range photos {
			if p.Orientation != catalog.Vertical {
				return Slide{}, fmt.Errorf("paired slide with horizontal photo %d: %w", p.ID, ErrMalformedSolution)
			}
		}
	default:
		return Slide{}, fmt.Errorf("slide with %d photos: %w", len(photos), ErrMalformedSolution)
	}

	return NewSlide(photos...), nil
}
