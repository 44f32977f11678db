package analytics

// orderedCounter counts occurrences per key and remembers the order in which
// keys were first seen, so ties resolve the same way on every run.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{
		counts: make(map[string]int),
	}
}

func (c *orderedCounter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// top returns the key with the highest count; on equal counts the key seen
// first wins. ok is false when nothing was counted.
func (c *orderedCounter) top() (key string, ok bool) {
	best := 0
	for _, k := range c.order {
		if n := c.counts[k]; n > best {
			best = n
			key = k
		}
	}
	return key, best > 0
}

// orderedSet keeps distinct strings in first-insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{
		seen:  make(map[string]struct{}),
		items: []string{},
	}
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}
