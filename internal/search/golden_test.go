package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goldenCase struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
	Index   int    `json:"index"`
}

// TestSearchGolden replays the golden corpus against every strategy. The
// corpus is produced by cmd/generate-golden.
func TestSearchGolden(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "search_golden.json"))
	require.NoError(t, err, "golden file must be readable")

	var cases []goldenCase
	require.NoError(t, json.Unmarshal(data, &cases), "golden file must be valid JSON")
	require.NotEmpty(t, cases, "golden file must not be empty")

	for _, strategy := range allStrategies(t) {
		strategy := strategy
		t.Run(strategy.Name(), func(t *testing.T) {
			t.Parallel()
			for _, gc := range cases {
				got := strategy.Search([]byte(gc.Text), []byte(gc.Pattern))
				assert.Equal(t, gc.Index, got,
					"Search(%q, %q)", gc.Text, gc.Pattern)
			}
		})
	}
}
