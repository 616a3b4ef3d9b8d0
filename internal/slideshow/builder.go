package slideshow

import "github.com/kozaktomas/slideshow-builder/internal/catalog"

// BuildResult holds the slides produced from a ranked photo sequence,
// partitioned by orientation, each list in ranked order. DroppedID is
// the id of the unpaired trailing vertical photo when the vertical
// count is odd, or -1 when every photo was placed.
type BuildResult struct {
	Horizontal []Slide
	Vertical   []Slide
	DroppedID  int
}

// Build partitions the ranked photos by orientation, keeping relative
// order within each class. Every horizontal photo becomes a singleton
// slide. Vertical photos are consumed two at a time in ranked order;
// an odd trailing vertical is dropped silently, which is a documented
// trade-off rather than an error.
func Build(ranked []catalog.Photo) BuildResult {
	result := BuildResult{DroppedID: -1}

	var verticals []catalog.Photo
	for _, p := range ranked {
		switch p.Orientation {
		case catalog.Horizontal:
			result.Horizontal = append(result.Horizontal, NewSlide(p))
		case catalog.Vertical:
			verticals = append(verticals, p)
		}
	}

	for i := 0; i+1 < len(verticals); i += 2 {
		result.Vertical = append(result.Vertical, NewSlide(verticals[i], verticals[i+1]))
	}
	if len(verticals)%2 == 1 {
		result.DroppedID = verticals[len(verticals)-1].ID
	}

	return result
}
