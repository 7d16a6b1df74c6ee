package circuits

// Counts maps an observed read-out bit string to its occurrence count.
// Character i of a key is classical bit i.
type Counts map[string]int

func (c Counts) Total() int {
	n := 0
	for _, count := range c {
		n += count
	}
	return n
}

// MostFrequent returns the key with the highest count. Ties break to the
// lexicographically smaller key so decoding is deterministic.
func (c Counts) MostFrequent() string {
	best := ""
	bestCount := -1
	for key, count := range c {
		if count > bestCount ||
			(count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best
}
