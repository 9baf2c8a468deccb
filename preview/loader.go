package preview

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/takaishi/snip/snippet"
)

const maxLineSize = 1024 * 1024

// ReadLines reads all lines from r without their line endings
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read lines")
	}
	return lines, nil
}

// Load loads a preview for the given file and line number
func Load(file string, lineNum int, opts ...snippet.Option) (*Preview, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", file)
	}

	s, err := snippet.Select(lines, lineNum, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", file)
	}

	return &Preview{
		File:    file,
		HitLine: lineNum,
		Snippet: s,
	}, nil
}
