package catalog

// Orientation describes how a photo is framed.
type Orientation string

// Orientation values as they appear in catalog files.
const (
	Horizontal Orientation = "H"
	Vertical   Orientation = "V"
)

// Photo is a single catalog entry. IDs are assigned by input order,
// starting at zero. Tags are deduplicated, first occurrence wins.
type Photo struct {
	ID          int         `json:"id"`
	Orientation Orientation `json:"orientation"`
	Tags        []string    `json:"tags"`
}

// Catalog holds the photos of one input file together with their tag
// index. A catalog is built once per file and never shared between
// files; stale tag entries from a previous file would corrupt
// popularity counts.
type Catalog struct {
	Photos []Photo
	Index  *TagIndex
}

// New returns an empty catalog with a fresh tag index.
func New() *Catalog {
	return &Catalog{
		Index: NewTagIndex(),
	}
}

// Add appends a photo to the catalog, assigning the next sequential id,
// collapsing duplicate tags and registering the photo in the tag index.
func (c *Catalog) Add(orientation Orientation, tags []string) Photo {
	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}

	photo := Photo{
		ID:          len(c.Photos),
		Orientation: orientation,
		Tags:        unique,
	}
	c.Photos = append(c.Photos, photo)
	c.Index.Register(photo.ID, unique)
	return photo
}

// TagSet returns the photo's tags as a set.
func (p Photo) TagSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Tags))
	for _, tag := range p.Tags {
		set[tag] = struct{}{}
	}
	return set
}
