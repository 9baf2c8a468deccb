// Package snippet cuts a window of lines around a finding and prepares it for display.
package snippet

import (
	"iter"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Snippet is a window of lines taken from a file.
type Snippet struct {
	Lines       []string
	StartLine   int // 0-based index of Lines[0] in the file
	TargetIndex int // index of the focused line within Lines

	colorize Colorizer
}

// TargetLine returns the focused line.
func (s *Snippet) TargetLine() (string, error) {
	if s.TargetIndex < 0 || s.TargetIndex >= len(s.Lines) {
		return "", errors.Wrapf(ErrIndexOutOfRange, "target index %d, %d lines", s.TargetIndex, len(s.Lines))
	}
	return s.Lines[s.TargetIndex], nil
}

// SetTargetLine replaces the focused line.
func (s *Snippet) SetTargetLine(line string) error {
	if s.TargetIndex < 0 || s.TargetIndex >= len(s.Lines) {
		return errors.Wrapf(ErrIndexOutOfRange, "target index %d, %d lines", s.TargetIndex, len(s.Lines))
	}
	s.Lines[s.TargetIndex] = line
	return nil
}

// PreviousLine returns the line before the target, or "" if there is none.
func (s *Snippet) PreviousLine() string {
	if s.TargetIndex <= 0 || s.TargetIndex > len(s.Lines) {
		return ""
	}
	return s.Lines[s.TargetIndex-1]
}

// WithLineNumbers prefixes every line with its 1-based line number in the file.
// It must be called at most once, and after Highlight.
func (s *Snippet) WithLineNumbers() *Snippet {
	for i, line := range s.Lines {
		num := s.colorizer()(strconv.Itoa(s.StartLine+i+1), StyleLineNumber)
		s.Lines[i] = num + ":" + line
	}
	return s
}

// Highlight styles the first case-insensitive occurrence of payload on the
// target line, keeping the line's original casing.
func (s *Snippet) Highlight(payload string) (*Snippet, error) {
	line, err := s.TargetLine()
	if err != nil {
		return s, err
	}

	start := indexFold(line, payload)
	if start < 0 {
		return s, errors.Wrapf(ErrSubstringNotFound, "%q", payload)
	}
	end := start + len(payload)

	s.Lines[s.TargetIndex] = line[:start] + s.colorizer()(line[start:end], StyleHighlight) + line[end:]
	return s, nil
}

// String joins the lines with newlines.
func (s *Snippet) String() string {
	return strings.Join(s.Lines, "\n")
}

// All yields the lines in order.
func (s *Snippet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range s.Lines {
			if !yield(line) {
				return
			}
		}
	}
}

func (s *Snippet) colorizer() Colorizer {
	if s.colorize == nil {
		return Plain
	}
	return s.colorize
}

// indexFold returns the byte offset of the first case-insensitive match of
// sub in s, such that s[i:i+len(sub)] is the match, or -1.
func indexFold(s, sub string) int {
	if sub == "" {
		return -1
	}
	for i := range s {
		if i+len(sub) > len(s) {
			break
		}
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}
