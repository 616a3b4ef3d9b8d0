package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_BasicCatalog(t *testing.T) {
	input := `4
H 2 a b
V 1 c
V 1 c
H 1 a
`
	cat, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cat.Photos) != 4 {
		t.Fatalf("expected 4 photos, got %d", len(cat.Photos))
	}

	if cat.Photos[0].Orientation != Horizontal {
		t.Errorf("expected photo 0 to be horizontal, got %s", cat.Photos[0].Orientation)
	}

	if cat.Photos[1].Orientation != Vertical {
		t.Errorf("expected photo 1 to be vertical, got %s", cat.Photos[1].Orientation)
	}

	if len(cat.Photos[0].Tags) != 2 {
		t.Errorf("expected photo 0 to have 2 tags, got %d", len(cat.Photos[0].Tags))
	}
}

func TestParse_IDsArePositional(t *testing.T) {
	input := "3\nH 1 a\nV 1 b\nH 1 c\n"

	cat, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, photo := range cat.Photos {
		if photo.ID != i {
			t.Errorf("expected photo %d to have id %d, got %d", i, i, photo.ID)
		}
	}
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	input := "2\nH 1 a\n\n\nH 1 b\n"

	cat, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cat.Photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(cat.Photos))
	}

	// Blank lines must not consume ids.
	if cat.Photos[1].ID != 1 {
		t.Errorf("expected second photo id 1, got %d", cat.Photos[1].ID)
	}
}

func TestParse_DeclaredCountIsAdvisory(t *testing.T) {
	// Count says 10, file has 2. Not an error.
	input := "10\nH 1 a\nH 1 b\n"

	cat, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cat.Photos) != 2 {
		t.Errorf("expected 2 photos, got %d", len(cat.Photos))
	}
}

func TestParse_DuplicateTagsCollapse(t *testing.T) {
	input := "1\nH 3 sun sun beach\n"

	cat, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cat.Photos[0].Tags) != 2 {
		t.Errorf("expected duplicates to collapse to 2 tags, got %v", cat.Photos[0].Tags)
	}

	if cat.Index.Popularity("sun") != 1 {
		t.Errorf("expected photo to register each tag once, popularity(sun)=%d", cat.Index.Popularity("sun"))
	}
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing count line", ""},
		{"non-numeric count", "abc\nH 1 a\n"},
		{"unknown orientation", "1\nX 1 a\n"},
		{"non-numeric tag count", "1\nH abc a\n"},
		{"tag count mismatch", "1\nH 3 a b\n"},
		{"missing tokens", "1\nH\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestParse_MalformedLineFailsWholeFile(t *testing.T) {
	// id assignment is positional, so a bad line must never be skipped
	input := "3\nH 1 a\nH bad-count x\nH 1 b\n"

	_, err := Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected whole-file failure for one malformed line")
	}

	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected error to name line 3, got %v", err)
	}
}

func TestParse_TagsAreOpaque(t *testing.T) {
	// Tags with non-ASCII bytes stay distinct, byte-exact.
	input := "2\nH 1 café\nH 1 cafe\n"

	cat, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cat.Index.Popularity("café") != 1 || cat.Index.Popularity("cafe") != 1 {
		t.Error("expected café and cafe to stay distinct tags")
	}
}
