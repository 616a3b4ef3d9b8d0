package slideshow

import (
	"fmt"
	"sort"

	"github.com/kozaktomas/slideshow-builder/internal/catalog"
)

// Ranking produces a total order over a catalog's photos. Slide
// adjacency quality is sensitive to which photos end up next to each
// other, so the ranking runs before slide construction.
type Ranking func(c *catalog.Catalog) []catalog.Photo

// Ranking policy names accepted by RankingByName.
const (
	RankTagScore      = "tag-score"
	RankTagPopularity = "tag-popularity"
)

// RankingByName resolves a ranking policy from its configured name.
func RankingByName(name string) (Ranking, error) {
	switch name {
	case RankTagScore:
		return TagScoreRanking, nil
	case RankTagPopularity:
		return TagPopularityRanking, nil
	default:
		return nil, fmt.Errorf("unknown ranking policy: %s (supported: %s, %s)", name, RankTagScore, RankTagPopularity)
	}
}

// TagScore returns the sum of the popularity of each of the photo's
// tags within the catalog.
func TagScore(c *catalog.Catalog, p catalog.Photo) int {
	score := 0
	for _, tag := range p.Tags {
		score += c.Index.Popularity(tag)
	}
	return score
}

// TagScoreRanking orders photos by descending tag score. The sort must
// be stable: ties fall back to input order, and an unstable sort would
// change adjacency scores from run to run.
func TagScoreRanking(c *catalog.Catalog) []catalog.Photo {
	scores := make([]int, len(c.Photos))
	for i, p := range c.Photos {
		scores[i] = TagScore(c, p)
	}

	ranked := make([]catalog.Photo, len(c.Photos))
	copy(ranked, c.Photos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})
	return ranked
}

// TagPopularityRanking orders tags by descending popularity (ties keep
// first-seen order), then enumerates each tag's photos in turn,
// deduplicating repeats. Photos sharing no tag with an earlier-listed
// tag are appended in residual input order.
func TagPopularityRanking(c *catalog.Catalog) []catalog.Photo {
	tags := make([]string, len(c.Index.Tags()))
	copy(tags, c.Index.Tags())
	sort.SliceStable(tags, func(i, j int) bool {
		return c.Index.Popularity(tags[i]) > c.Index.Popularity(tags[j])
	})

	ranked := make([]catalog.Photo, 0, len(c.Photos))
	placed := make(map[int]struct{}, len(c.Photos))
	for _, tag := range tags {
		for _, id := range c.Index.PhotoIDs(tag) {
			if _, ok := placed[id]; ok {
				continue
			}
			placed[id] = struct{}{}
			ranked = append(ranked, c.Photos[id])
		}
	}

	// Untagged photos never appear in any tag entry.
	for _, p := range c.Photos {
		if _, ok := placed[p.ID]; !ok {
			ranked = append(ranked, p)
		}
	}
	return ranked
}
