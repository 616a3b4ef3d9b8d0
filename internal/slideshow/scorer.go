package slideshow

// Score returns the interest factor between two adjacent slides:
// the minimum of the shared tag count, the tags only in a, and the
// tags only in b. Evaluated in exactly that operand order.
func Score(a, b Slide) int {
	common := 0
	onlyA := 0
	for tag := range a.Tags {
		if _, ok := b.Tags[tag]; ok {
			common++
		} else {
			onlyA++
		}
	}
	onlyB := len(b.Tags) - common

	result := common
	if onlyA < result {
		result = onlyA
	}
	if onlyB < result {
		result = onlyB
	}
	return result
}

// TotalScore sums the adjacency score over every consecutive slide
// pair. Sequences of length zero or one score zero.
func TotalScore(slides []Slide) int {
	total := 0
	for i := 1; i < len(slides); i++ {
		total += Score(slides[i-1], slides[i])
	}
	return total
}
