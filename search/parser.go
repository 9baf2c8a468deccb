package search

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseVimgrepLine parses a single line of ripgrep vimgrep output
// Format: file:line:column:text
func ParseVimgrepLine(line string) (*SearchResult, error) {
	// The text part may itself contain colons
	parts := strings.SplitN(line, ":", 4)
	if len(parts) < 4 {
		return nil, errors.Newf("invalid vimgrep format: %s", line)
	}

	lineNum, err := strconv.Atoi(parts[1])
	if err != nil || lineNum < 1 {
		return nil, errors.Newf("invalid line number: %s", parts[1])
	}

	columnNum, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, errors.Newf("invalid column number: %s", parts[2])
	}

	return &SearchResult{
		File:   parts[0],
		Line:   lineNum,
		Column: columnNum,
		Text:   parts[3],
	}, nil
}

// ParseVimgrepOutput parses multiple lines of ripgrep vimgrep output,
// skipping lines that do not parse
func ParseVimgrepOutput(output string) []*SearchResult {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	results := make([]*SearchResult, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result, err := ParseVimgrepLine(line)
		if err != nil {
			continue
		}
		results = append(results, result)
	}

	return results
}
