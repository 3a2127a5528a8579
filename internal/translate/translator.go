// Package translate wraps the external machine-translation service used to keep
// the per-language content rows in sync.
package translate

import "context"

// Content is a flat record of named text fields in one language, e.g.
// {"name": "Pest Control", "title": "Fast & Safe"}.
type Content map[string]string

// Clone returns a shallow copy of the content record.
func (c Content) Clone() Content {
	out := make(Content, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Translator produces translated copies of a source-language content record.
// Implementations return one record per target language; a language missing from
// the result means translation failed for it and the caller should fall back to
// the source content.
type Translator interface {
	Translate(ctx context.Context, source Content, targets []string) (map[string]Content, error)
}

// Static is a canned Translator for tests and offline development. Missing
// languages simulate per-language failures.
type Static struct {
	ByLanguage map[string]Content
}

func (s Static) Translate(_ context.Context, source Content, targets []string) (map[string]Content, error) {
	out := make(map[string]Content, len(targets))
	for _, lang := range targets {
		if c, ok := s.ByLanguage[lang]; ok {
			out[lang] = c.Clone()
		}
	}
	return out, nil
}
