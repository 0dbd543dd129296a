package counter

import "sort"

// Count occurrences of a value inside a Counter
type Count[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter counts occurrences of values, remembering the order in which each value was first seen.
// Ties are always broken in favour of the value seen first, so results do not depend on map order.
type Counter[K comparable] struct {
	index  map[K]int
	counts []Count[K]
	total  int
}

func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{
		index: make(map[K]int),
	}
}

func (c *Counter[K]) UpdateCounter(value K) {
	c.total += 1
	if idx, ok := c.index[value]; ok {
		c.counts[idx].Count += 1
		return
	}
	c.index[value] = len(c.counts)
	c.counts = append(c.counts, Count[K]{Value: value, Count: 1})
}

// GetTotal returns the amount of values counted
func (c *Counter[K]) GetTotal() int {
	return c.total
}

// Mode returns the most frequent value. The boolean is false if nothing was counted
func (c *Counter[K]) Mode() (Count[K], bool) {
	if len(c.counts) == 0 {
		return Count[K]{}, false
	}

	best := c.counts[0]
	for _, count := range c.counts[1:] {
		if count.Count > best.Count {
			best = count
		}
	}
	return best, true
}

// Counts returns every distinct value ordered by count, most frequent first.
// Values with the same count keep their first-seen order.
func (c *Counter[K]) Counts() []Count[K] {
	sorted := make([]Count[K], len(c.counts))
	copy(sorted, c.counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	return sorted
}
