package preview

import (
	"strings"

	"github.com/takaishi/snip/snippet"
)

const (
	allowlistPragma         = "pragma: allowlist secret"
	allowlistNextLinePragma = "pragma: allowlist nextline secret"
)

// IsAllowlisted reports whether the hit line is exempted by an inline
// pragma on the line itself or a nextline pragma on the line above it.
func IsAllowlisted(s *snippet.Snippet) bool {
	line, err := s.TargetLine()
	if err != nil {
		return false
	}
	if strings.Contains(strings.ToLower(line), allowlistPragma) {
		return true
	}
	return strings.Contains(strings.ToLower(s.PreviousLine()), allowlistNextLinePragma)
}
