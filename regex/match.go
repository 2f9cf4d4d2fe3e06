package regex

// Options of a single Engine.Match call.
type Options struct {
	// ReturnMatches fills Result.Matches.
	ReturnMatches bool
	// ContinueAfterMatch keeps searching from the end of every match.
	ContinueAfterMatch bool
	CaseMode           CaseMode
}

// Engine compiles patterns on demand and remembers the most recently used ones.
// An Engine must not be used from several goroutines at once, a compiled Regex may.
type Engine struct {
	cache *cache
}

// NewEngine returns an Engine remembering up to cacheSize patterns, at least one.
func NewEngine(cacheSize int) *Engine {
	return &Engine{cache: newCache(cacheSize)}
}

// Compile returns the cached Regex for pattern and mode, compiling it on a miss.
func (e *Engine) Compile(pattern string, mode CaseMode) (*Regex, error) {
	key := cacheKey{pattern: pattern, mode: mode}
	if re, ok := e.cache.get(key); ok {
		return re, nil
	}

	re, err := CompileFold(pattern, mode)
	if err != nil {
		return nil, err
	}
	e.cache.put(key, re)
	return re, nil
}

// Match searches text for pattern. Pattern errors are returned as *Error wrapped by the
// compile step; a text that doesn't match is not an error.
func (e *Engine) Match(pattern, text string, opts Options) (Result, error) {
	re, err := e.Compile(pattern, opts.CaseMode)
	if err != nil {
		return Result{}, err
	}

	res := re.Match(text, opts.ContinueAfterMatch)
	if !opts.ReturnMatches {
		res.Matches = nil
	}
	return res, nil
}

// Match is a shorthand for a one-off Engine.Match.
func Match(pattern, text string, opts Options) (Result, error) {
	return NewEngine(1).Match(pattern, text, opts)
}
