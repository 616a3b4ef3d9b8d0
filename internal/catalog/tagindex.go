package catalog

// TagIndex maps each tag to the photos carrying it. Entries are created
// on first sighting and only ever appended to; there is no removal.
// Photo id lists keep registration order, which equals input order
// because photos register their tags exactly once, at creation.
type TagIndex struct {
	entries map[string][]int
	order   []string // tags in first-seen order
}

// NewTagIndex returns an empty index.
func NewTagIndex() *TagIndex {
	return &TagIndex{
		entries: make(map[string][]int),
	}
}

// Register appends photoID to the entry of every given tag. The caller
// guarantees the tags are already deduplicated for this photo.
func (ix *TagIndex) Register(photoID int, tags []string) {
	for _, tag := range tags {
		if _, ok := ix.entries[tag]; !ok {
			ix.order = append(ix.order, tag)
		}
		ix.entries[tag] = append(ix.entries[tag], photoID)
	}
}

// Popularity returns the number of distinct photos carrying the tag.
func (ix *TagIndex) Popularity(tag string) int {
	return len(ix.entries[tag])
}

// PhotoIDs returns the ids registered under the tag, in input order.
// The returned slice is the index's own; callers must not mutate it.
func (ix *TagIndex) PhotoIDs(tag string) []int {
	return ix.entries[tag]
}

// Tags returns all known tags in first-seen order.
func (ix *TagIndex) Tags() []string {
	return ix.order
}
