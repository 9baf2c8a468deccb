package search

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRipgrep(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("rg"); err != nil {
		t.Skip("ripgrep not installed")
	}
}

func TestSearch(t *testing.T) {
	requireRipgrep(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "creds.txt"), []byte("user=bob\nPassword=hunter2\n"), 0o644))

	msg := <-NewSearcher().Search(context.Background(), Query{Pattern: "password", Dir: dir})
	require.NoError(t, msg.Error)
	require.Len(t, msg.Results, 1)

	r := msg.Results[0]
	assert.Equal(t, 2, r.Line)
	assert.Equal(t, 1, r.Column)
	assert.Equal(t, "Password=hunter2", r.Text)
}

func TestSearchNoMatches(t *testing.T) {
	requireRipgrep(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("nothing\n"), 0o644))

	s := NewSearcher()
	msg := <-s.Search(context.Background(), Query{Pattern: "absent", Dir: dir})
	require.NoError(t, msg.Error)
	assert.Empty(t, msg.Results)
	assert.Equal(t, int64(1), msg.SearchID)

	msg = <-s.Search(context.Background(), Query{Pattern: "absent", Dir: dir})
	assert.Equal(t, int64(2), msg.SearchID)
}
