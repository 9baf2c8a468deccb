package search

import (
	"bufio"
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// Searcher handles ripgrep search execution
type Searcher struct {
	searchID int64
	binary   string
}

// NewSearcher creates a new Searcher instance
func NewSearcher() *Searcher {
	return &Searcher{binary: "rg"}
}

// SearchResultMsg is sent when search results are available
type SearchResultMsg struct {
	SearchID int64
	Results  []*SearchResult
	Error    error
}

// Args returns the ripgrep arguments for q
func (q Query) Args() []string {
	args := []string{
		"--vimgrep",
		"--no-heading",
		"--color=never",
		"--fixed-strings",
		"--ignore-case",
	}
	if q.Glob != "" {
		args = append(args, "--glob", q.Glob)
	}
	// "--" keeps patterns starting with "-" from being read as flags.
	// An explicit path stops rg from searching stdin when it is not a terminal.
	return append(args, "--", q.Pattern, ".")
}

// Search executes a ripgrep search for q.
// The returned channel receives exactly one message and is then closed.
func (s *Searcher) Search(ctx context.Context, q Query) <-chan SearchResultMsg {
	s.searchID++
	currentID := s.searchID
	resultChan := make(chan SearchResultMsg, 1)

	go func() {
		defer close(resultChan)

		fail := func(err error) {
			resultChan <- SearchResultMsg{SearchID: currentID, Error: err}
		}

		args := q.Args()
		cmd := exec.CommandContext(ctx, s.binary, args...)
		cmd.Dir = q.Dir
		log.Debug().Int64("search_id", currentID).Str("dir", q.Dir).Strs("args", args).Msg("running ripgrep")

		stdout, err := cmd.StdoutPipe()
		if err != nil {
			fail(errors.Wrap(err, "failed to create stdout pipe"))
			return
		}
		if err := cmd.Start(); err != nil {
			fail(errors.Wrap(err, "failed to start ripgrep"))
			return
		}

		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		results := make([]*SearchResult, 0)

		for scanner.Scan() {
			result, err := ParseVimgrepLine(scanner.Text())
			if err != nil {
				log.Debug().Err(err).Msg("skipping ripgrep line")
				continue
			}
			results = append(results, result)
		}
		if err := scanner.Err(); err != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			fail(errors.Wrap(err, "failed to read output"))
			return
		}

		if err := cmd.Wait(); err != nil {
			if ctx.Err() != nil {
				fail(ctx.Err())
				return
			}
			// ripgrep exits 1 when nothing matched
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
				resultChan <- SearchResultMsg{SearchID: currentID, Results: []*SearchResult{}}
				return
			}
			fail(errors.Wrap(err, "ripgrep failed"))
			return
		}

		log.Debug().Int64("search_id", currentID).Int("results", len(results)).Msg("ripgrep finished")
		resultChan <- SearchResultMsg{SearchID: currentID, Results: results}
	}()

	return resultChan
}
