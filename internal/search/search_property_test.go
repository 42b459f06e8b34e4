package search

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSearchProperties validates every strategy against bytes.Index on
// random inputs drawn from a two-letter alphabet, which maximises the rate
// of partial matches and hash collisions.
func TestSearchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	genText := gen.SliceOf(gen.OneConstOf(byte('a'), byte('b'), byte('c')))
	genPattern := gen.SliceOf(gen.OneConstOf(byte('a'), byte('b'), byte('c'))).
		SuchThat(func(p []byte) bool { return len(p) <= 8 })

	for _, name := range NewDefaultFactory().List() {
		name := name
		t.Run(name, func(t *testing.T) {
			strategy, err := NewDefaultFactory().Get(name)
			if err != nil {
				t.Fatalf("factory failed to resolve %q: %v", name, err)
			}

			properties := gopter.NewProperties(parameters)

			properties.Property("matches bytes.Index", prop.ForAll(
				func(text, pattern []byte) bool {
					return strategy.Search(text, pattern) == bytes.Index(text, pattern)
				},
				genText,
				genPattern,
			))

			properties.Property("finds an embedded pattern", prop.ForAll(
				func(prefix, pattern, suffix []byte) bool {
					text := append(append(append([]byte{}, prefix...), pattern...), suffix...)
					idx := strategy.Search(text, pattern)
					if idx == NotFound || idx > len(prefix) {
						return false
					}
					return bytes.Equal(text[idx:idx+len(pattern)], pattern)
				},
				genText,
				genPattern,
				genText,
			))

			properties.TestingRun(t)
		})
	}
}
