package slideshow

import "github.com/kozaktomas/slideshow-builder/internal/catalog"

// Slide is the atomic display unit: one horizontal photo, or two
// vertical photos shown together. Its tag set is the deduplicated
// union of its photos' tags and never changes after construction.
type Slide struct {
	Photos []catalog.Photo
	Tags   map[string]struct{}
}

// NewSlide builds a slide from the given photos and computes its tag set.
func NewSlide(photos ...catalog.Photo) Slide {
	tags := make(map[string]struct{})
	for _, p := range photos {
		for _, tag := range p.Tags {
			tags[tag] = struct{}{}
		}
	}
	return Slide{Photos: photos, Tags: tags}
}

// PhotoIDs returns the ids of the slide's photos in slide order.
func (s Slide) PhotoIDs() []int {
	ids := make([]int, len(s.Photos))
	for i, p := range s.Photos {
		ids[i] = p.ID
	}
	return ids
}

// Slideshow is the final ordered slide sequence plus its total
// adjacency score. The score is computed once, after ordering.
type Slideshow struct {
	Slides []Slide
	Score  int
}
