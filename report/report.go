// Package report renders search results as snippets.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/takaishi/snip/preview"
	"github.com/takaishi/snip/search"
	"github.com/takaishi/snip/snippet"
)

// Printer writes one snippet per search result.
type Printer struct {
	Out             io.Writer
	Dir             string // directory result paths are relative to
	Colorizer       snippet.Colorizer
	ContextRadius   int
	ShowAllowlisted bool
}

// Path returns the path of r's file as seen from the working directory.
func (p *Printer) Path(r *search.SearchResult) string {
	if p.Dir == "" || filepath.IsAbs(r.File) {
		return r.File
	}
	return filepath.Join(p.Dir, r.File)
}

// Render builds the displayable snippet for r with payload highlighted.
// The second return value is false when the result is allowlisted and
// ShowAllowlisted is not set.
func (p *Printer) Render(r *search.SearchResult, payload string) (string, bool, error) {
	pv, err := preview.Load(p.Path(r), r.Line,
		snippet.WithContextRadius(p.ContextRadius),
		snippet.WithColorizer(p.Colorizer),
	)
	if err != nil {
		return "", false, err
	}
	if !p.ShowAllowlisted && preview.IsAllowlisted(pv.Snippet) {
		return "", false, nil
	}

	if _, err := pv.Highlight(payload); err != nil {
		if !errors.Is(err, snippet.ErrSubstringNotFound) {
			return "", false, err
		}
		// ripgrep's case folding is wider than ours
		log.Debug().Str("file", r.File).Int("line", r.Line).Msg("match not found on line, not highlighting")
	}

	return pv.WithLineNumbers().String(), true, nil
}

// Print writes all results and returns how many were shown.
// Files that cannot be read are logged and skipped.
func (p *Printer) Print(results []*search.SearchResult, payload string) (int, error) {
	shown := 0
	for _, r := range results {
		text, ok, err := p.Render(r, payload)
		if err != nil {
			log.Warn().Err(err).Str("file", r.File).Int("line", r.Line).Msg("skipping result")
			continue
		}
		if !ok {
			log.Debug().Str("file", r.File).Int("line", r.Line).Msg("allowlisted")
			continue
		}

		sep := "\n"
		if shown == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(p.Out, "%s%s:%d\n%s\n", sep, r.File, r.Line, text); err != nil {
			return shown, errors.Wrap(err, "failed to write output")
		}
		shown++
	}
	return shown, nil
}
