package slideshow

import "fmt"

// Sequencing merges the horizontal and vertical slide lists into the
// final sequence that gets scored. Exactly one policy is active per
// run, chosen by configuration, never autodetected.
type Sequencing func(horizontal, vertical []Slide) []Slide

// Sequencing policy names accepted by SequencingByName.
const (
	SeqConcat     = "concat"
	SeqInterleave = "interleave"
	SeqGreedy     = "greedy"
)

// SequencingByName resolves a sequencing policy from its configured name.
func SequencingByName(name string) (Sequencing, error) {
	switch name {
	case SeqConcat:
		return ConcatSequencing, nil
	case SeqInterleave:
		return InterleaveSequencing, nil
	case SeqGreedy:
		return GreedySequencing, nil
	default:
		return nil, fmt.Errorf("unknown sequencing policy: %s (supported: %s, %s, %s)", name, SeqConcat, SeqInterleave, SeqGreedy)
	}
}

// ConcatSequencing places all horizontal slides first, then all
// vertical slides, both in built order. This is the reference policy.
func ConcatSequencing(horizontal, vertical []Slide) []Slide {
	slides := make([]Slide, 0, len(horizontal)+len(vertical))
	slides = append(slides, horizontal...)
	slides = append(slides, vertical...)
	return slides
}

// InterleaveSequencing alternates one slide from each list by built
// order until one list runs out, then appends the remainder of the
// other.
func InterleaveSequencing(horizontal, vertical []Slide) []Slide {
	slides := make([]Slide, 0, len(horizontal)+len(vertical))
	i := 0
	for ; i < len(horizontal) && i < len(vertical); i++ {
		slides = append(slides, horizontal[i], vertical[i])
	}
	slides = append(slides, horizontal[i:]...)
	slides = append(slides, vertical[i:]...)
	return slides
}

// GreedySequencing starts from the first slide in construction order
// and repeatedly appends the not-yet-placed slide with the highest
// adjacency score against the last placed one, ties broken by lowest
// construction index. O(n²) over the slide count; the only policy that
// optimizes the objective instead of approximating it by built order.
func GreedySequencing(horizontal, vertical []Slide) []Slide {
	pool := ConcatSequencing(horizontal, vertical)
	if len(pool) <= 1 {
		return pool
	}

	slides := make([]Slide, 0, len(pool))
	used := make([]bool, len(pool))

	slides = append(slides, pool[0])
	used[0] = true

	for len(slides) < len(pool) {
		last := slides[len(slides)-1]
		best := -1
		bestScore := -1
		for i, candidate := range pool {
			if used[i] {
				continue
			}
			if s := Score(last, candidate); s > bestScore {
				best = i
				bestScore = s
			}
		}
		slides = append(slides, pool[best])
		used[best] = true
	}

	return slides
}
