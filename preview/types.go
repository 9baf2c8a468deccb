package preview

import "github.com/takaishi/snip/snippet"

// Preview is a snippet of a file around a hit line
type Preview struct {
	File    string
	HitLine int // 1-based line number in File
	*snippet.Snippet
}
