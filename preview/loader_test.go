package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takaishi/snip/snippet"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "no trailing newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines", input: "a\n\n\nb\n", want: []string{"a", "", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	got, err := ReadLines(strings.NewReader("short\n" + long + "\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, long, got[1])
}

func TestLoad(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := writeFile(t, b.String())

	p, err := Load(path, 15, snippet.WithContextRadius(3))
	require.NoError(t, err)

	assert.Equal(t, path, p.File)
	assert.Equal(t, 15, p.HitLine)
	assert.Equal(t, 11, p.StartLine)
	assert.Equal(t, 3, p.TargetIndex)
	assert.Equal(t, []string{"line 12", "line 13", "line 14", "line 15", "line 16", "line 17", "line 18"}, p.Lines)

	target, err := p.TargetLine()
	require.NoError(t, err)
	assert.Equal(t, "line 15", target)
}

func TestLoadErrors(t *testing.T) {
	path := writeFile(t, "one\ntwo\n")

	_, err := Load(path, 3)
	assert.True(t, errors.Is(err, snippet.ErrInvalidLineNumber), "got %v", err)
	assert.Contains(t, err.Error(), path)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsAllowlisted(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
		want  bool
	}{
		{
			name:  "no pragma",
			lines: []string{"x = 1", "password = 'hunter2'"},
			line:  2,
			want:  false,
		},
		{
			name:  "inline pragma",
			lines: []string{"x = 1", "password = 'hunter2'  # pragma: allowlist secret"},
			line:  2,
			want:  true,
		},
		{
			name:  "inline pragma any case",
			lines: []string{"password = 'hunter2'  # Pragma: Allowlist Secret"},
			line:  1,
			want:  true,
		},
		{
			name:  "nextline pragma",
			lines: []string{"# pragma: allowlist nextline secret", "password = 'hunter2'"},
			line:  2,
			want:  true,
		},
		{
			name:  "nextline pragma on hit line only",
			lines: []string{"password = 'hunter2' # pragma: allowlist nextline secret"},
			line:  1,
			want:  false,
		},
		{
			name:  "nextline pragma two lines up",
			lines: []string{"# pragma: allowlist nextline secret", "", "password = 'hunter2'"},
			line:  3,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := snippet.Select(tt.lines, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, IsAllowlisted(s))
		})
	}
}

func TestIsAllowlistedInvalidTarget(t *testing.T) {
	s := &snippet.Snippet{Lines: []string{"# pragma: allowlist secret"}, TargetIndex: 3}
	assert.False(t, IsAllowlisted(s))
}
