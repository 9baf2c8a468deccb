package editor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// Editor represents an editor type
type Editor string

const (
	EditorCursor Editor = "cursor"
	EditorCode   Editor = "code"
)

var lookPath = exec.LookPath

// DetectEditor detects which editor is available
func DetectEditor() (Editor, error) {
	for _, ed := range []Editor{EditorCursor, EditorCode} {
		if _, err := lookPath(string(ed)); err == nil {
			return ed, nil
		}
	}
	return "", errors.New("no editor found (cursor or code)")
}

// Args returns the command line arguments that open file at line and column
func Args(file string, line, column int, reuseWindow bool) []string {
	args := []string{"--goto", fmt.Sprintf("%s:%d:%d", file, line, column)}
	if reuseWindow {
		args = append([]string{"--reuse-window"}, args...)
	}
	return args
}

// OpenFile opens a file in the specified editor at the given line and column.
// It does not wait for the editor to exit.
func OpenFile(ed Editor, file string, line, column int) error {
	if ed == "" {
		detected, err := DetectEditor()
		if err != nil {
			return err
		}
		ed = detected
	}

	args := Args(file, line, column, isRunningInEditor())
	log.Debug().Str("editor", string(ed)).Strs("args", args).Msg("opening editor")

	cmd := exec.Command(string(ed), args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", ed)
	}
	go cmd.Wait()

	return nil
}

// isRunningInEditor reports whether we run inside a Cursor or VS Code terminal
func isRunningInEditor() bool {
	if os.Getenv("VSCODE_IPC_HOOK") != "" || os.Getenv("VSCODE_IPC_HOOK_CLI") != "" {
		return true
	}
	return os.Getenv("CURSOR_AGENT") != "" || os.Getenv("TERM_PROGRAM") == "vscode"
}
