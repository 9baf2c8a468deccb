package search

// SearchResult represents a single search result from ripgrep
type SearchResult struct {
	File   string // relative to Query.Dir, "./"-prefixed
	Line   int    // 1-based
	Column int    // 1-based byte column
	Text   string // matched line
}

// Query describes a ripgrep search
type Query struct {
	Pattern string // fixed string, matched case-insensitively
	Glob    string // optional --glob filter
	Dir     string // directory to search in, empty means current directory
}
