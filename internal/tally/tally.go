// Package tally counts log entries per severity level.
package tally

// Counts holds a count per level and remembers the order in which levels
// were first seen. The zero value is ready to use.
type Counts struct {
	order  []string
	counts map[string]int
}

// Increment adds one to level, starting it at one if unseen.
func (c *Counts) Increment(level string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	if _, seen := c.counts[level]; !seen {
		c.order = append(c.order, level)
	}
	c.counts[level]++
}

// Levels returns the distinct levels in first-seen order.
func (c *Counts) Levels() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Count returns the count for level, or zero if it was never seen.
func (c *Counts) Count(level string) int {
	return c.counts[level]
}

// Total returns the sum of all counts.
func (c *Counts) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Len returns the number of distinct levels.
func (c *Counts) Len() int {
	return len(c.order)
}
