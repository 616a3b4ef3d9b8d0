package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedInput marks a catalog line that cannot be parsed. A single
// bad line fails the whole file: photo ids are positional, so skipping a
// line would shift every later id and silently corrupt the tag index.
var ErrMalformedInput = errors.New("malformed catalog input")

// Parse reads a photo catalog from r. The first line is the declared
// photo count; it must be a decimal integer but is otherwise advisory
// and is not validated against the actual number of lines. Each
// following non-empty line is:
//
//	<H|V> <tagCount> <tag1> ... <tagN>
//
// Blank lines are skipped without consuming a photo id.
func Parse(r io.Reader) (*Catalog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
		return nil, fmt.Errorf("line 1: missing photo count: %w", ErrMalformedInput)
	}
	if _, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err != nil {
		return nil, fmt.Errorf("line 1: photo count is not a number: %w", ErrMalformedInput)
	}

	cat := New()
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		orientation, tags, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		cat.Add(orientation, tags)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	return cat, nil
}

func parseLine(line string) (Orientation, []string, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, fmt.Errorf("expected orientation and tag count: %w", ErrMalformedInput)
	}

	var orientation Orientation
	switch fields[0] {
	case "H":
		orientation = Horizontal
	case "V":
		orientation = Vertical
	default:
		return "", nil, fmt.Errorf("unknown orientation %q: %w", fields[0], ErrMalformedInput)
	}

	tagCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", nil, fmt.Errorf("tag count %q is not a number: %w", fields[1], ErrMalformedInput)
	}

	tags := fields[2:]
	if len(tags) != tagCount {
		return "", nil, fmt.Errorf("declared %d tags but found %d: %w", tagCount, len(tags), ErrMalformedInput)
	}

	return orientation, tags, nil
}
