// Package counter decides which positional argument definition receives each positional token.
package counter

// Bounds is the occurrence range of one argument definition
type Bounds struct {
	Min int
	Max int
}

// Counter hands out positional tokens to argument definitions in declaration order
type Counter struct {
	bounds []Bounds
	// budget is how many tokens each definition may still receive
	budget []int
	counts []int
	index  int
}

// New returns a Counter for an unknown number of tokens. Every definition is filled
// up to its maximum before the next definition receives a token.
func New(bounds []Bounds) *Counter {
	budget := make([]int, len(bounds))
	for i, b := range bounds {
		budget[i] = b.Max
	}

	return newCounter(bounds, budget)
}

// NewWithCount returns a Counter for exactly n tokens. Minimums are satisfied left to right
// first, then the remaining tokens go to the flexible ranges in declaration order.
func NewWithCount(bounds []Bounds, n int) *Counter {
	budget := make([]int, len(bounds))
	remaining := n
	for i, b := range bounds {
		take := b.Min
		if take > remaining {
			take = remaining
		}
		budget[i] = take
		remaining -= take
	}

	for i, b := range bounds {
		if remaining == 0 {
			break
		}
		take := b.Max - budget[i]
		if take > remaining {
			take = remaining
		}
		budget[i] += take
		remaining -= take
	}

	return newCounter(bounds, budget)
}

func newCounter(bounds []Bounds, budget []int) *Counter {
	return &Counter{
		bounds: bounds,
		budget: budget,
		counts: make([]int, len(bounds)),
	}
}

// Next returns the index of the definition receiving the next token, or -1 when no
// definition accepts any more tokens.
func (c *Counter) Next() int {
	for c.index < len(c.bounds) && c.counts[c.index] >= c.budget[c.index] {
		c.index++
	}
	if c.index == len(c.bounds) {
		return -1
	}
	c.counts[c.index]++

	return c.index
}

// IsComplete reports whether every definition has received its minimum
func (c *Counter) IsComplete() bool {
	return c.FirstIncomplete() == -1
}

// FirstIncomplete returns the index of the first definition short of its minimum, or -1
func (c *Counter) FirstIncomplete() int {
	for i, b := range c.bounds {
		if c.counts[i] < b.Min {
			return i
		}
	}

	return -1
}

// Count returns the number of tokens given to the definition at index i
func (c *Counter) Count(i int) int {
	return c.counts[i]
}

// RequiresArgumentCount reports whether more than one definition has a flexible range.
// Such definitions can only be filled correctly when the number of tokens is known.
func RequiresArgumentCount(bounds []Bounds) bool {
	flexible := 0
	for _, b := range bounds {
		if b.Min < b.Max {
			flexible++
		}
	}

	return flexible > 1
}

// NeedsCount reports whether tokens should be counted before streaming them into a Counter.
// This is the case when RequiresArgumentCount is true or when a flexible definition is
// followed by a definition with a minimum, which streaming would starve.
func NeedsCount(bounds []Bounds) bool {
	if RequiresArgumentCount(bounds) {
		return true
	}

	flexible := false
	for _, b := range bounds {
		if flexible && b.Min > 0 {
			return true
		}
		if b.Min < b.Max {
			flexible = true
		}
	}

	return false
}
