package regex

type cacheKey struct {
	pattern string
	mode    CaseMode
}

type cacheEntry struct {
	key cacheKey
	re  *Regex
}

// cache keeps the most recently used compiled patterns, newest first. Capacities are tiny,
// a linear scan is all it needs.
type cache struct {
	size    int
	entries []cacheEntry
}

func newCache(size int) *cache {
	if size < 1 {
		size = 1
	}
	return &cache{size: size}
}

func (c *cache) get(k cacheKey) (*Regex, bool) {
	for i, e := range c.entries {
		if e.key == k {
			copy(c.entries[1:i+1], c.entries[:i])
			c.entries[0] = e
			return e.re, true
		}
	}
	return nil, false
}

func (c *cache) put(k cacheKey, re *Regex) {
	c.entries = append([]cacheEntry{{key: k, re: re}}, c.entries...)
	if len(c.entries) > c.size {
		c.entries = c.entries[:c.size]
	}
}
