package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TagCount pairs a tag with the number of photos carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// PopularityReport lists all tags by descending popularity. Ties are
// ordered by Unicode collation of the tag name so the report reads
// naturally regardless of input order. Display only: tag identity in
// the index stays byte-exact.
func PopularityReport(c *Catalog) []TagCount {
	tags := c.Index.Tags()
	report := make([]TagCount, len(tags))
	for i, tag := range tags {
		report[i] = TagCount{Tag: tag, Count: c.Index.Popularity(tag)}
	}

	col := collate.New(language.Und)
	sort.SliceStable(report, func(i, j int) bool {
		if report[i].Count != report[j].Count {
			return report[i].Count > report[j].Count
		}
		return col.CompareString(report[i].Tag, report[j].Tag) < 0
	})
	return report
}
