// Command generate-golden regenerates the golden corpus used by the search
// strategy tests. The expected indices come from bytes.Index, which serves
// as the independent oracle.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type goldenCase struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
	Index   int    `json:"index"`
}

var corpus = []struct {
	text    string
	pattern string
}{
	{"The quick brown fox jumps over the lazy dog", "fox"},
	{"The quick brown fox jumps over the lazy dog", "the"},
	{"The quick brown fox jumps over the lazy dog", "dog"},
	{"The quick brown fox jumps over the lazy dog", "cat"},
	{"The quick brown fox jumps over the lazy dog", ""},
	{"aaaaaaaaab", "aab"},
	{"abacabadabacaba", "acab"},
	{"mississippi", "ssippi"},
	{"hello", "hello world"},
	{"ababababab", "bab"},
}

func main() {
	cases := make([]goldenCase, 0, len(corpus))
	for _, c := range corpus {
		cases = append(cases, goldenCase{
			Text:    c.text,
			Pattern: c.pattern,
			Index:   bytes.Index([]byte(c.text), []byte(c.pattern)),
		})
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshaling golden cases: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	path := filepath.Join("internal", "search", "testdata", "search_golden.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d golden cases to %s\n", len(cases), path)
}
