package level

import (
	"log"
	"sync"
)

// maxCorrectionPasses bounds the validate/correct loop so template creation
// always terminates even on geometry the heuristic cannot fix.
const maxCorrectionPasses = 10

// Factory generates level geometry deterministically and guarantees, best
// effort, that it is traversable before anyone sees it. Templates are cached
// permanently; the key space is levels x room-type and stays tiny.
type Factory struct {
	validator Validator

	mu    sync.Mutex
	cache map[Key]*Template
}

func NewFactory(validator Validator) *Factory {
	return &Factory{
		validator: validator,
		cache:     make(map[Key]*Template),
	}
}

// Template returns the cached template for key, generating and validating it
// on first request.
func (f *Factory) Template(key Key) *Template {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.cache[key]; ok {
		return t
	}

	t := generate(key)
	f.correctAccessibility(t)
	f.cache[key] = t
	return t
}

// correctAccessibility iterates validation and correction to a fixed point or
// the pass bound. Platforms still unreachable after the bound are left in
// place and logged as a data-quality warning; the level stays playable, the
// offending platform is just never visited.
func (f *Factory) correctAccessibility(t *Template) {
	ground := t.groundRects()

	for pass := 0; pass < maxCorrectionPasses; pass++ {
		unreachable := f.validator.Unreachable(ground, t.platformRects())
		if len(unreachable) == 0 {
			return
		}
		for _, idx := range unreachable {
			f.validator.Lower(&t.Platforms[idx], t.Height)
		}
	}

	if leftover := f.validator.Unreachable(ground, t.platformRects()); len(leftover) > 0 {
		log.Printf("level: %s still has %d unreachable platforms after %d correction passes",
			t.Key, len(leftover), maxCorrectionPasses)
	}
}
